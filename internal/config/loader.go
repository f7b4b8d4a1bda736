package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load decodes the embedded settings.
// Falls back to DefaultSettings if the embedded YAML does not decode or validate.
func Load() Settings {
	cfg, err := Parse(defaultSettingsYAML)
	if err != nil {
		return DefaultSettings()
	}
	return cfg
}

// Parse decodes settings from YAML on top of DefaultSettings and validates the result.
func Parse(data []byte) (Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// Validate checks that the settings describe a winnable game.
func (s Settings) Validate() error {
	if s.Threshold < 0 || s.Threshold >= 100 {
		return fmt.Errorf("threshold %.2f out of range [0, 100)", s.Threshold)
	}
	if s.BlockWidth <= 0 {
		return fmt.Errorf("block_width must be positive, got %d", s.BlockWidth)
	}
	if s.Text.Prompt == "" {
		return fmt.Errorf("prompt must not be empty")
	}
	return nil
}
