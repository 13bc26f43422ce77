package core

// Game is the interface the terminal platform drives.
// Implementations hold pure logic; the platform handles input mapping,
// timing and rendering.
type Game interface {
	// ID returns a unique identifier used for screenshots and storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game for the given screen.
	Reset(cfg RuntimeConfig)

	// Step advances the game by one tick with the input gathered since the last one.
	Step(in InputFrame) StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
