package config

import (
	_ "embed"
)

//go:embed defaults/columns.yaml
var defaultColumnsYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultColumnsYAML))
	copy(out, defaultColumnsYAML)
	return out
}

// DefaultColumnsConfig returns the default Columns configuration.
func DefaultColumnsConfig() ColumnsConfig {
	return ColumnsConfig{
		Timing: TimingConfig{
			BaseMS: 300,
			Decay:  0.66,
			MinMS:  0,
		},
		Palette: []string{
			"gray",
			"lightgreen",
			"pink",
			"blue",
			"orange",
			"purple",
			"red",
			"yellow",
			"cyan",
		},
		Keys: KeyConfig{
			Left:   []string{"left", "l"},
			Right:  []string{"right", "r"},
			Down:   []string{"down", "d"},
			Rotate: []string{"up"},
			Pause:  []string{"p"},
			Quit:   []string{"q", "ctrl+c"},
		},
	}
}
