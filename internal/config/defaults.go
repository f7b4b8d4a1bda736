package config

import (
	_ "embed"
)

//go:embed defaults/colorguess.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings used when the embedded YAML is unusable.
func DefaultSettings() Settings {
	return Settings{
		Threshold:  90.0,
		BlockWidth: 20,
		Text: Messages{
			Title:  "Guess this color:",
			Hint:   "Aim for an accuracy above %.0f%%!",
			Prompt: "type color:",
			Win:    "You did it!",
		},
	}
}
