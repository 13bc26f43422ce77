// syllables is a terminal puzzle: swap syllable tiles on a grid until every
// row spells its word again.
//
// Usage:
//
//	syllables list             - List the puzzles in the catalogue
//	syllables play [index]     - Play, from the picker or straight into a puzzle
//	syllables serve            - Start SSH server for remote play
//	syllables scores [index]   - Show best solves
//	syllables config           - Print the default puzzle catalogue
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--db <path>      - Set database path (default: ~/.syllables/solves.db)
//	--config <path>  - Load puzzles from a YAML file
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "syllables",
	Short: "Syllables - a word tile puzzle for your terminal",
	Long: `Syllables scrambles the syllables of a few words across a grid.
Swap two tiles at a time until every row reads its word again.

Available commands:
  list     - Show the puzzles in the catalogue
  play     - Play a puzzle
  serve    - Start SSH server for remote play
  scores   - View best solves
  config   - Print the default puzzle catalogue

Examples:
  syllables list
  syllables play
  syllables play 2
  syllables serve --ssh :2222
  syllables scores 1`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.syllables/solves.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom puzzle catalogue YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// parseIndex parses a puzzle index argument.
func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index <= 0 {
		return 0, fmt.Errorf("invalid puzzle index %q", arg)
	}
	return index, nil
}
