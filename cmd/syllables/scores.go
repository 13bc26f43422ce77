package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-syllables/internal/config"
	"github.com/vovakirdan/tui-syllables/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [index]",
	Short: "Show best solves",
	Long: `Display the fewest-move solves of a puzzle, or a summary of every
puzzle when no index is given.

Examples:
  syllables scores
  syllables scores 2
  syllables scores 2 --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of solves to show")
}

func runScores(_ *cobra.Command, args []string) {
	cat, _, err := config.LoadCatalog(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading puzzles: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if err := printSummary(cat, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		}
		return
	}

	index, err := parseIndex(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if _, ok := cat.Entry(index); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %d\n", index)
		fmt.Fprintln(os.Stderr, "Run 'syllables list' to see available puzzles.")
		return
	}

	if err := printPuzzleSolves(cat, store, index); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
	}
}

func printPuzzleSolves(cat *config.Catalog, store *storage.Store, index int) error {
	solves, err := store.TopSolves(index, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Solves - %d. %s\n", index, cat.Name(index))
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'syllables play %d' to set the first record!\n", index)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-12s  %s\n", "Rank", "Moves", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-12s  %s\n", "----", "-----", "------", "----")

	for i, s := range solves {
		fmt.Printf("  %-4d  %-6d  %-12s  %s\n", i+1, s.Moves, s.Player, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.PuzzleStats(index)
	if err == nil {
		fmt.Println()
		fmt.Printf("Solves: %d  Best: %d  Average: %.1f\n", stats.Solves, stats.BestMoves, stats.AvgMoves)
	}
	return nil
}

func printSummary(cat *config.Catalog, store *storage.Store) error {
	all, err := store.AllPuzzleStats()
	if err != nil {
		return err
	}

	fmt.Println("Solve Summary")
	fmt.Println()
	fmt.Printf("  %-5s  %-14s  %-6s  %-4s  %s\n", "Index", "Name", "Solves", "Best", "Last")
	fmt.Printf("  %-5s  %-14s  %-6s  %-4s  %s\n", "-----", "----", "------", "----", "----")

	for _, e := range cat.Entries() {
		stats, ok := all[e.Index]
		if !ok {
			fmt.Printf("  %-5d  %-14s  %-6d  %-4s  %s\n", e.Index, e.Name, 0, "-", "never")
			continue
		}
		fmt.Printf("  %-5d  %-14s  %-6d  %-4d  %s\n",
			e.Index, e.Name, stats.Solves, stats.BestMoves, stats.LastSolved.Format("2006-01-02 15:04"))
	}

	recent, err := store.RecentSolves(5)
	if err != nil || len(recent) == 0 {
		return err
	}
	fmt.Println()
	fmt.Println("Recent:")
	for _, s := range recent {
		fmt.Printf("  %s solved %d. %s in %d moves\n", s.Player, s.Puzzle, s.Name, s.Moves)
	}
	return nil
}
