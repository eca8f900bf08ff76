package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDifficultyRamp(t *testing.T) {
	d := NewDifficultyManager(DefaultSwitchyardConfig().Difficulty)

	tests := []struct {
		score    int
		speed    float64
		interval int
	}{
		{0, 1.0, 2500},
		{4, 1.0, 2500},
		{5, 1.0, 2425},
		{9, 1.0, 2425},
		{10, 1.15, 2350},
		{23, 1.30, 2200},
		{100, 2.5, 1000},
		{200, 4.0, 500}, // interval floor
		{1000, 16.0, 500},
	}

	for _, tc := range tests {
		speed := d.Speed(tc.score)
		if diff := speed - tc.speed; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Speed(%d) = %f, expected %f", tc.score, speed, tc.speed)
		}
		if got := d.SpawnInterval(tc.score); got != tc.interval {
			t.Errorf("SpawnInterval(%d) = %d, expected %d", tc.score, got, tc.interval)
		}
	}
}

func TestDifficultyIsPure(t *testing.T) {
	d := NewDifficultyManager(DefaultSwitchyardConfig().Difficulty)

	for score := 0; score < 200; score += 7 {
		if d.Speed(score) != d.Speed(score) {
			t.Fatalf("Speed(%d) not stable", score)
		}
		if d.SpawnInterval(score) != d.SpawnInterval(score) {
			t.Fatalf("SpawnInterval(%d) not stable", score)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DefaultSwitchyardConfig().Difficulty)
	d.SetEnabled(false)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false after SetEnabled(false)")
	}
	if d.Speed(50) != 1.0 {
		t.Errorf("Disabled Speed(50) = %f, expected 1.0", d.Speed(50))
	}
	if d.SpawnInterval(50) != 2500 {
		t.Errorf("Disabled SpawnInterval(50) = %d, expected 2500", d.SpawnInterval(50))
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	embedded, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	hard := DefaultSwitchyardConfig()

	if embedded.Canvas != hard.Canvas {
		t.Errorf("Canvas differs: %+v vs %+v", embedded.Canvas, hard.Canvas)
	}
	if len(embedded.Tracks) != len(hard.Tracks) {
		t.Fatalf("Track count differs: %d vs %d", len(embedded.Tracks), len(hard.Tracks))
	}
	for i := range hard.Tracks {
		if embedded.Tracks[i] != hard.Tracks[i] {
			t.Errorf("Track %d differs: %f vs %f", i, embedded.Tracks[i], hard.Tracks[i])
		}
	}
	if len(embedded.Switches) != len(hard.Switches) {
		t.Fatalf("Switch count differs")
	}
	for i := range hard.Switches {
		if embedded.Switches[i] != hard.Switches[i] {
			t.Errorf("Switch %d differs: %+v vs %+v", i, embedded.Switches[i], hard.Switches[i])
		}
	}
	if embedded.Stop != hard.Stop {
		t.Errorf("Stop differs: %+v vs %+v", embedded.Stop, hard.Stop)
	}
	if embedded.Spawn != hard.Spawn {
		t.Errorf("Spawn differs: %+v vs %+v", embedded.Spawn, hard.Spawn)
	}
	if embedded.Difficulty != hard.Difficulty {
		t.Errorf("Difficulty differs: %+v vs %+v", embedded.Difficulty, hard.Difficulty)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("stop:\n  x: 650\n  track: 1\n  dwell_ms: 500\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Stop.X != 650 || cfg.Stop.DwellMs != 500 {
		t.Errorf("Stop override not applied: %+v", cfg.Stop)
	}
	if len(cfg.Tracks) != 4 {
		t.Errorf("Unspecified sections should keep defaults, got %d tracks", len(cfg.Tracks))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *SwitchyardConfig)
		want   error
	}{
		{"defaults are valid", func(c *SwitchyardConfig) {}, nil},
		{"no tracks", func(c *SwitchyardConfig) { c.Tracks = nil }, ErrNoTracks},
		{"bad canvas", func(c *SwitchyardConfig) { c.Canvas.Width = 0 }, ErrBadCanvas},
		{"no train types", func(c *SwitchyardConfig) { c.Trains.Types = nil }, ErrNoTrainTypes},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSwitchyardConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}

	bad := []func(c *SwitchyardConfig){
		func(c *SwitchyardConfig) { c.Switches[0].ToTrack = 9 },
		func(c *SwitchyardConfig) { c.Switches[1].Track = -1 },
		func(c *SwitchyardConfig) { c.Stop.Track = 4 },
		func(c *SwitchyardConfig) { c.Spawn.MinCars = 0 },
		func(c *SwitchyardConfig) { c.Spawn.MaxCars = 0 },
	}
	for i, mutate := range bad {
		cfg := DefaultSwitchyardConfig()
		mutate(&cfg)
		if cfg.Validate() == nil {
			t.Errorf("case %d: Validate() should fail", i)
		}
	}
}

func TestLoadSwitchyardCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  initial_speed: 2.0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadSwitchyard(path)
	if err != nil {
		t.Fatalf("LoadSwitchyard failed: %v", err)
	}
	if cfg.Difficulty.InitialSpeed != 2.0 {
		t.Errorf("InitialSpeed = %f, expected 2.0", cfg.Difficulty.InitialSpeed)
	}

	if _, err := LoadSwitchyard(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadSwitchyard should fail for a missing custom path")
	}

	badPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("tracks: []\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadSwitchyard(badPath); !errors.Is(err, ErrNoTracks) {
		t.Errorf("LoadSwitchyard(bad) = %v, expected ErrNoTracks", err)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultSwitchyardConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable the ramp")
	}

	cfg = DefaultSwitchyardConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialSpeed <= 1.0 || cfg.Difficulty.InitialInterval >= 2500 {
		t.Errorf("hard preset should start faster, got %+v", cfg.Difficulty)
	}

	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
	if p, err := ParsePreset("easy"); err != nil || p != DifficultyEasy {
		t.Errorf("ParsePreset(easy) = %q, %v", p, err)
	}
}
