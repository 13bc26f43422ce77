package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-syllables/internal/config"
	"github.com/vovakirdan/tui-syllables/internal/core"
	"github.com/vovakirdan/tui-syllables/internal/games/syllables"
	"github.com/vovakirdan/tui-syllables/internal/platform/tui"
	"github.com/vovakirdan/tui-syllables/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [index]",
	Short: "Play a puzzle",
	Long: `Start playing. Without an index the puzzle picker is shown first;
with one the game opens straight on that puzzle.

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Enter/Space/Click - Pick a tile, then its swap partner
  1-3               - Switch puzzle
  U                 - Undo the last swap
  R                 - Reset the puzzle
  P                 - Pause
  B/Esc             - Back to the picker
  Q/Ctrl+C          - Quit

Examples:
  syllables play
  syllables play 2
  syllables play --config ./my-puzzles.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	start := 0
	if len(args) == 1 {
		index, err := parseIndex(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		start = index
	}

	cat, puzzles, err := config.LoadCatalog(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading puzzles: %v\n", err)
		os.Exit(1)
	}
	if start != 0 {
		if _, ok := cat.Entry(start); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown puzzle %d\n", start)
			fmt.Fprintln(os.Stderr, "Run 'syllables list' to see available puzzles.")
			os.Exit(1)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		store = nil
	}

	runErr := playLoop(cat, puzzles, store, cfg, start)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playLoop alternates between the picker, the scoreboard and the game until
// the player quits.
func playLoop(cat *config.Catalog, puzzles config.SyllablesConfig, store *storage.Store, cfg core.RuntimeConfig, start int) error {
	// The alt screen hides stderr; only warnings get through.
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "syllables", Level: log.WarnLevel})

	for {
		if start == 0 {
			menuResult, err := tui.RunMenu(cat, store, cfg)
			if err != nil {
				return err
			}
			cfg = menuResult.Config

			if menuResult.Quit {
				return nil
			}

			if menuResult.WantsScoreboard {
				goBack, sbErr := tui.RunScoreboard(cat, store, 0, cfg.ScreenW, cfg.ScreenH)
				if sbErr != nil {
					return sbErr
				}
				if goBack {
					continue
				}
				return nil
			}
			start = menuResult.Puzzle
		}

		game := syllables.New(cat, puzzles)
		game.SetLogger(logger)
		game.SetStartPuzzle(start)

		backToMenu, err := tui.Run(game, store, cfg)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
		start = 0
	}
}
