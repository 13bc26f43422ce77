package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-syllables/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the puzzle catalogue",
	Long: `Print the catalogue in YAML. Without --config this is the built-in
catalogue; save it to ~/.syllables/configs/syllables.yaml and edit it to
add puzzles.

Examples:
  syllables config > ~/.syllables/configs/syllables.yaml
  syllables config --config ./my-puzzles.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfig == "" {
		//nolint:errcheck // Best-effort write to stdout
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	_, cfg, err := config.LoadCatalog(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading puzzles: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding puzzles: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort write to stdout
	os.Stdout.Write(out)
}
