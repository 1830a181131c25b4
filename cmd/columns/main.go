// columns is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	columns play             - Play a game
//	columns config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write game events to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "columns",
	Short: "Columns - a falling-block puzzle in your terminal",
	Long: `Columns drops pieces of four blocks into a 10x20 well.
Fill a row to clear it; every ten rows cleared raises the level and
speeds up the fall.

Available commands:
  play     - Play a game
  config   - Print the effective configuration as YAML

Examples:
  columns play
  columns play --difficulty hard
  columns play --seed 42 --log-file columns.log
  columns config --config ./my-columns.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
