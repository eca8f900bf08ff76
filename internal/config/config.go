// Package config provides YAML-based game configuration loading and
// difficulty management for switchyard.
package config

import (
	"errors"
	"fmt"
)

// SwitchyardConfig contains all configuration for the Switchyard game.
type SwitchyardConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Tracks     []float64        `yaml:"tracks"` // Y coordinate of each track
	Switches   []SwitchConfig   `yaml:"switches"`
	SwitchGeom SwitchGeometry   `yaml:"switch_geometry"`
	Trains     TrainsConfig     `yaml:"trains"`
	Stop       StopConfig       `yaml:"stop"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// CanvasConfig defines the virtual drawing surface all gameplay happens in.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SwitchConfig places one switch on a source track.
type SwitchConfig struct {
	X       float64 `yaml:"x"`
	Track   int     `yaml:"track"`    // Source track index
	ToTrack int     `yaml:"to_track"` // Target track index
}

// SwitchGeometry defines switch drawing and hit-testing sizes.
type SwitchGeometry struct {
	Length        float64 `yaml:"length"`         // Drawn length; hit box half-width is 1.5x
	HitHalfHeight float64 `yaml:"hit_half_height"`
	PassTolerance float64 `yaml:"pass_tolerance"` // |train.x - switch.x| below this redirects
}

// TrainsConfig defines train geometry and the type table.
type TrainsConfig struct {
	Width       float64           `yaml:"width"`
	Height      float64           `yaml:"height"`
	CarGap      float64           `yaml:"car_gap"`
	LaneEpsilon float64           `yaml:"lane_epsilon"` // |dy| below this counts as same lane
	Types       []TrainTypeConfig `yaml:"types"`
}

// TrainTypeConfig is one entry of the train type table.
type TrainTypeConfig struct {
	Name   string  `yaml:"name"`
	Color  string  `yaml:"color"`
	Speed  float64 `yaml:"speed"`
	Points int     `yaml:"points"`
	Weight float64 `yaml:"weight"` // Relative spawn probability
}

// StopConfig defines the station stop.
type StopConfig struct {
	Track       int     `yaml:"track"`
	X           float64 `yaml:"x"`
	DwellMs     int     `yaml:"dwell_ms"`
	ResumeNudge float64 `yaml:"resume_nudge"`
}

// SpawnConfig defines where and how trains enter the canvas.
type SpawnConfig struct {
	StartX        float64 `yaml:"start_x"`
	Track         int     `yaml:"track"`
	MinSpacing    float64 `yaml:"min_spacing"`
	SpacingFactor float64 `yaml:"spacing_factor"` // Extra spacing per unit of speed difference
	MinCars       int     `yaml:"min_cars"`
	MaxCars       int     `yaml:"max_cars"`
}

// DifficultyConfig defines the stepped, score-driven difficulty ramp.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	InitialSpeed    float64 `yaml:"initial_speed"`
	SpeedStep       float64 `yaml:"speed_step"`
	SpeedEvery      int     `yaml:"speed_every"` // Points per speed step
	InitialInterval int     `yaml:"initial_interval_ms"`
	IntervalStep    int     `yaml:"interval_step_ms"`
	IntervalEvery   int     `yaml:"interval_every"` // Points per interval step
	MinInterval     int     `yaml:"min_interval_ms"`
}

// AudioConfig defines tone playback settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // Master gain applied on top of each tone's envelope
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validation errors.
var (
	ErrNoTracks     = errors.New("config: at least one track is required")
	ErrBadCanvas    = errors.New("config: canvas width and height must be positive")
	ErrNoTrainTypes = errors.New("config: at least one train type is required")
)

// Validate checks the config for layouts the game cannot run.
func (c SwitchyardConfig) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return ErrBadCanvas
	}
	if len(c.Tracks) == 0 {
		return ErrNoTracks
	}
	if len(c.Trains.Types) == 0 {
		return ErrNoTrainTypes
	}

	validTrack := func(i int) bool { return i >= 0 && i < len(c.Tracks) }

	for i, s := range c.Switches {
		if !validTrack(s.Track) {
			return fmt.Errorf("config: switch %d: source track %d out of range", i, s.Track)
		}
		if !validTrack(s.ToTrack) {
			return fmt.Errorf("config: switch %d: target track %d out of range", i, s.ToTrack)
		}
	}
	if !validTrack(c.Stop.Track) {
		return fmt.Errorf("config: stop track %d out of range", c.Stop.Track)
	}
	if !validTrack(c.Spawn.Track) {
		return fmt.Errorf("config: spawn track %d out of range", c.Spawn.Track)
	}
	if c.Spawn.MinCars < 1 || c.Spawn.MaxCars < c.Spawn.MinCars {
		return fmt.Errorf("config: invalid car range %d..%d", c.Spawn.MinCars, c.Spawn.MaxCars)
	}
	for _, tt := range c.Trains.Types {
		if tt.Weight < 0 {
			return fmt.Errorf("config: train type %q has negative weight", tt.Name)
		}
	}
	return nil
}
