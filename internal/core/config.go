package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status the game reports to the platform after each tick.
type GameState struct {
	Puzzle   int  // Selected puzzle index, 0 before any selection
	Moves    int  // Current move count
	Grades   int  // Current grade count
	Paused   bool // Whether the game is paused
	Solved   bool // Whether the victory banner is showing
	Quitting bool // Whether the player asked to leave
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State   GameState
	Message string // One-line status for the HUD, empty when nothing happened
}
