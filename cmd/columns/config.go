package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/columns/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, after the config search
and the difficulty preset, as YAML. The output can be saved and edited.

Search order:
  --config <path>
  ~/.arcade/configs/columns.yaml
  ./configs/columns.yaml
  built-in defaults

Examples:
  columns config
  columns config --difficulty hard > ~/.arcade/configs/columns.yaml
  columns config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file, with comments")
}

func runConfig(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	if flagDefaults {
		//nolint:errcheck // Writing to stdout
		out.Write(config.DefaultYAML())
		return
	}

	cfg, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(out, "# source: %s\n", source)
	//nolint:errcheck // Writing to stdout
	out.Write(data)
}
