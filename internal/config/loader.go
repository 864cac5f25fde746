package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLander loads the simulation config, checking in order:
//  1. customPath if non-empty (error if missing or invalid)
//  2. ~/.lander/configs/lander.yaml
//  3. ./configs/lander.yaml
//  4. embedded defaults
func LoadLander(customPath string) (LanderConfig, error) {
	if customPath != "" {
		cfg, err := loadFromFile(customPath)
		if err != nil {
			return LanderConfig{}, err
		}
		return cfg, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".lander", "configs", "lander.yaml")
		if cfg, err := loadFromFile(p); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFromFile(filepath.Join("configs", "lander.yaml")); err == nil {
		return cfg, nil
	}

	return DefaultLanderConfig(), nil
}

// ApplyLanderPreset overrides the config's gravity with the preset's value.
func ApplyLanderPreset(cfg *LanderConfig, preset DifficultyPreset) error {
	if !ValidPreset(preset) {
		return fmt.Errorf("config: unknown difficulty preset %q", preset)
	}
	cfg.Physics.Gravity = GravityForPreset(preset)
	return nil
}

func loadFromFile(path string) (LanderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LanderConfig{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}

	// Start from defaults so partial configs only override what they set.
	cfg := DefaultLanderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LanderConfig{}, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}
