package config

import (
	"math"
	"time"
)

// Interval returns the gravity interval for a level:
// base_ms * decay^level, truncated to whole milliseconds and floored at min_ms.
func (t TimingConfig) Interval(level int) time.Duration {
	level = max(level, 0)
	ms := int(float64(t.BaseMS) * math.Pow(t.Decay, float64(level)))
	if t.MinMS > 0 && ms < t.MinMS {
		ms = t.MinMS
	}
	// A zero interval would spin the timer.
	ms = max(ms, 1)
	return time.Duration(ms) * time.Millisecond
}

// ApplyColumnsPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyColumnsPreset(cfg *ColumnsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseMS = 450
	case DifficultyHard:
		cfg.Timing.BaseMS = 200
	case DifficultyFixed:
		cfg.Timing.Decay = 1.0
	}
}
