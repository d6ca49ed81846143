package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the starfighter configuration.
// Search order: customPath -> ~/.starfighter/configs/starfighter.yaml ->
// ./configs/starfighter.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		Normalize(&cfg)
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("starfighter.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				Normalize(&cfg)
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/starfighter.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			Normalize(&cfg)
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starfighter", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.SpawnInterval = 60
		cfg.Tiers.Thresholds = []float64{45, 90, 135}
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.SpawnInterval = 30
		cfg.Tiers.Thresholds = []float64{20, 40, 60}
	case DifficultyFixed:
		DisableProgression(cfg)
	}
}

// ParsePreset validates a difficulty string from the CLI.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard, or fixed)", s)
	}
}
