package syllables

import "github.com/vovakirdan/tui-syllables/internal/puzzle"

// StateType represents the phase the game is in.
type StateType string

const (
	StateWaiting     StateType = "waiting" // No puzzle chosen yet
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StateSolved      StateType = "solved" // Victory banner showing
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for tests and replay checks.
type Snapshot struct {
	Tick    uint64
	Puzzle  int // Selected puzzle, 0 before any selection
	Labels  puzzle.Grid
	Scored  [][]bool
	Moves   int
	Grades  int
	Cursor  puzzle.Coordinate
	Pending *puzzle.Coordinate
	History int
	Message string
	State   StateType
	Queued  int // Solves not yet taken by the platform
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.victoryTicks > 0:
		state = StateSolved
	case !g.chosen:
		state = StateWaiting
	}

	p := g.session.Puzzle()
	scored := make([][]bool, p.Rows())
	for r := range scored {
		scored[r] = make([]bool, p.Columns())
		for c := range scored[r] {
			scored[r][c] = p.PieceAt(r, c).IsScored
		}
	}

	snap := Snapshot{
		Tick:    g.tick,
		Labels:  p.Labels(),
		Scored:  scored,
		Moves:   g.session.Moves(),
		Grades:  g.session.Grades(),
		Cursor:  g.cursor,
		History: g.moves.Len(),
		Message: g.message,
		State:   state,
		Queued:  len(g.solves),
	}
	if g.chosen {
		snap.Puzzle = g.session.SelectedConfig()
	}
	if cell, ok := g.moves.Selected(); ok {
		snap.Pending = &cell
	}
	return snap
}
