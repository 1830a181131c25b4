package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/games/columns"
	"github.com/vovakirdan/columns/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Columns.

Controls (defaults, see 'columns config'):
  Left/L     - Move left
  Right/R    - Move right
  Down/D     - Drop one row
  Up         - Rotate (restart after game over)
  P          - Pause
  Q/Ctrl+C   - Quit
  ?          - Toggle full help

Difficulty options:
  easy   - Slower start (450 ms per row)
  normal - 300 ms per row, 34% faster each level
  hard   - Faster start (200 ms per row)
  fixed  - No speed-up between levels

Examples:
  columns play
  columns play --difficulty easy
  columns play --config ./my-columns.yaml
  columns play --log-file columns.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	game, err := columns.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runCfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	logger.Debug("configuration loaded",
		"source", source,
		"difficulty", flagDifficulty,
		"base_ms", cfg.Timing.BaseMS,
		"decay", cfg.Timing.Decay,
	)

	if err := tui.Run(game, tui.NewKeyMap(cfg.Keys), logger, runCfg); err != nil {
		logger.Error("game exited", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
