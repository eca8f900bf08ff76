package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "switchyard.yaml"

// LoadSwitchyard loads Switchyard configuration.
// Search order: customPath -> ~/.switchyard/configs/switchyard.yaml ->
// ./configs/switchyard.yaml -> embedded default.
// Files are decoded over the defaults, so partial configs are allowed.
func LoadSwitchyard(customPath string) (SwitchyardConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SwitchyardConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SwitchyardConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(configFileName), filepath.Join("configs", configFileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSwitchyardYAML)
	if err != nil {
		return DefaultSwitchyardConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults and validates the result.
func Parse(data []byte) (SwitchyardConfig, error) {
	cfg := DefaultSwitchyardConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SwitchyardConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SwitchyardConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".switchyard", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SwitchyardConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialSpeed = 0.8
		cfg.Difficulty.InitialInterval = 3000
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialSpeed = 1.3
		cfg.Difficulty.InitialInterval = 2000
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	}
}
