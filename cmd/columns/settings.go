package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/columns/internal/config"
)

// loadConfig loads the configuration named by the flags and applies the
// difficulty preset.
func loadConfig() (config.ColumnsConfig, string, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ColumnsConfig{}, "", err
	}

	cfg, source, err := config.LoadColumnsWithSource(flagConfig)
	if err != nil {
		return config.ColumnsConfig{}, "", err
	}

	config.ApplyColumnsPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.ColumnsConfig{}, "", err
	}
	return cfg, source, nil
}

// newLogger creates the game event logger. Without a log file events are
// discarded, since the game owns the terminal.
// The returned close function releases the log file.
func newLogger(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "columns",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
