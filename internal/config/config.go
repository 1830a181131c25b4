// Package config provides YAML-based configuration loading and difficulty
// presets for Columns.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/columns/internal/core"
)

// PaletteSize is the number of palette entries. Entry 0 colors empty cells.
const PaletteSize = 9

// ColumnsConfig contains all configuration for Columns.
type ColumnsConfig struct {
	Timing  TimingConfig `yaml:"timing"`
	Palette []string     `yaml:"palette"`
	Keys    KeyConfig    `yaml:"keys"`
}

// TimingConfig defines the gravity schedule.
type TimingConfig struct {
	BaseMS int     `yaml:"base_ms"` // interval at level 0
	Decay  float64 `yaml:"decay"`   // per-level multiplier, (0, 1]
	MinMS  int     `yaml:"min_ms"`  // floor for the interval, 0 disables it
}

// KeyConfig lists the key names bound to each action.
// Names follow Bubble Tea's KeyMsg.String() form ("left", "ctrl+c", "p").
type KeyConfig struct {
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
	Down   []string `yaml:"down"`
	Rotate []string `yaml:"rotate"`
	Pause  []string `yaml:"pause"`
	Quit   []string `yaml:"quit"`
}

// Colors resolves the palette names to screen colors.
func (c ColumnsConfig) Colors() ([PaletteSize]core.Color, error) {
	var out [PaletteSize]core.Color
	if len(c.Palette) != PaletteSize {
		return out, fmt.Errorf("palette must have %d entries, got %d", PaletteSize, len(c.Palette))
	}
	for i, name := range c.Palette {
		col, err := core.ParseColor(name)
		if err != nil {
			return out, fmt.Errorf("palette entry %d: %w", i, err)
		}
		out[i] = col
	}
	return out, nil
}

// Validate checks that the configuration can drive a game.
func (c ColumnsConfig) Validate() error {
	var errs []error

	if c.Timing.BaseMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.base_ms must be positive, got %d", c.Timing.BaseMS))
	}
	if c.Timing.Decay <= 0 || c.Timing.Decay > 1 {
		errs = append(errs, fmt.Errorf("timing.decay must be in (0, 1], got %g", c.Timing.Decay))
	}
	if c.Timing.MinMS < 0 {
		errs = append(errs, fmt.Errorf("timing.min_ms must not be negative, got %d", c.Timing.MinMS))
	}
	if _, err := c.Colors(); err != nil {
		errs = append(errs, err)
	}

	bindings := []struct {
		name string
		keys []string
	}{
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"down", c.Keys.Down},
		{"rotate", c.Keys.Rotate},
		{"pause", c.Keys.Pause},
		{"quit", c.Keys.Quit},
	}
	for _, b := range bindings {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s must list at least one key", b.name))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid columns config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables the per-level speed-up.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
