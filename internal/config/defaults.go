package config

import (
	_ "embed"
)

//go:embed defaults/switchyard.yaml
var defaultSwitchyardYAML []byte

// DefaultSwitchyardConfig returns the default Switchyard configuration.
func DefaultSwitchyardConfig() SwitchyardConfig {
	return SwitchyardConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Tracks: []float64{100, 250, 400, 550},
		Switches: []SwitchConfig{
			{X: 200, Track: 0, ToTrack: 1},
			{X: 400, Track: 1, ToTrack: 2},
			{X: 600, Track: 1, ToTrack: 3},
		},
		SwitchGeom: SwitchGeometry{
			Length:        50,
			HitHalfHeight: 50,
			PassTolerance: 5,
		},
		Trains: TrainsConfig{
			Width:       40,
			Height:      20,
			CarGap:      5,
			LaneEpsilon: 10,
			Types: []TrainTypeConfig{
				{Name: "blue", Color: "blue", Speed: 1.0, Points: 1, Weight: 0.7},
				{Name: "red", Color: "red", Speed: 1.5, Points: 2, Weight: 0.3},
			},
		},
		Stop: StopConfig{
			Track:       1,
			X:           700,
			DwellMs:     2000,
			ResumeNudge: 10,
		},
		Spawn: SpawnConfig{
			StartX:        -40,
			Track:         0,
			MinSpacing:    150,
			SpacingFactor: 100,
			MinCars:       1,
			MaxCars:       3,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			InitialSpeed:    1.0,
			SpeedStep:       0.15,
			SpeedEvery:      10,
			InitialInterval: 2500,
			IntervalStep:    75,
			IntervalEvery:   5,
			MinInterval:     500,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSwitchyardYAML
}
