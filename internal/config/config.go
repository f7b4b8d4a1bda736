// Package config provides the YAML-backed settings for the color guessing game.
package config

// Settings contains the fixed parameters of a game session.
type Settings struct {
	// Threshold is the accuracy a guess must exceed (strictly) to win.
	Threshold float64 `yaml:"threshold"`

	// BlockWidth is the number of cells in a rendered color block.
	BlockWidth int `yaml:"block_width"`

	Text Messages `yaml:"text"`
}

// Messages holds the text shown around the prompt loop.
type Messages struct {
	Title  string `yaml:"title"`
	Hint   string `yaml:"hint"` // Formatted with the threshold
	Prompt string `yaml:"prompt"`
	Win    string `yaml:"win"`
}
