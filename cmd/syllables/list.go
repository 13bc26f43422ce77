package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-syllables/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the puzzles in the catalogue",
	Long:  `Shows every puzzle with its index and the words to rebuild.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cat, _, err := config.LoadCatalog(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading puzzles: %v\n", err)
		os.Exit(1)
	}

	board := cat.Board()
	fmt.Printf("Puzzles (%dx%d board):\n", board.Rows, board.Columns)
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, e := range cat.Entries() {
		maxNameLen = max(maxNameLen, len(e.Name))
	}

	fmt.Printf("  %-5s  %-*s  %s\n", "Index", maxNameLen, "Name", "Words")
	fmt.Printf("  %-5s  %-*s  %s\n", "-----", maxNameLen, "----", "-----")

	for _, e := range cat.Entries() {
		words := make([]string, 0, len(e.Target))
		for _, row := range e.Target {
			words = append(words, strings.Join(row, ""))
		}
		fmt.Printf("  %-5d  %-*s  %s\n", e.Index, maxNameLen, e.Name, strings.Join(words, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'syllables play <index>' to play a puzzle.")
}
