package puzzle

// Catalog supplies immutable target and scrambled grids keyed by a small
// integer index. Implementations must not hand out grids callers can mutate
// into the catalogue itself.
type Catalog interface {
	// Target returns the solved arrangement for index.
	Target(index int) (Grid, bool)

	// Scrambled returns the starting arrangement for index.
	Scrambled(index int) (Grid, bool)

	// DefaultTarget is what the grader compares against before a
	// configuration is selected, and for unknown indices.
	DefaultTarget() Grid
}

// Board is the narrow view of a game the move log and grader work against.
type Board interface {
	Puzzle() *Puzzle

	Moves() int
	SetMoves(n int)

	Grades() int
	SetGrades(n int)

	// ResetPuzzle reloads the selected configuration and zeroes both counters.
	ResetPuzzle()
}
