package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K - cursor up
	ActionDown           // Down arrow, S, J - cursor down
	ActionLeft           // Left arrow, A, H - cursor left
	ActionRight          // Right arrow, D, L - cursor right
	ActionConfirm        // Enter, Space - click the cell under the cursor
	ActionUndo           // U - undo the last swap
	ActionRestart        // R - reset the current puzzle
	ActionPick1          // 1 - select puzzle 1
	ActionPick2          // 2 - select puzzle 2
	ActionPick3          // 3 - select puzzle 3
	ActionPause          // P - pause/unpause
	ActionBack           // Esc, B - back to the puzzle picker
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionUndo:
		return "Undo"
	case ActionRestart:
		return "Restart"
	case ActionPick1:
		return "Pick1"
	case ActionPick2:
		return "Pick2"
	case ActionPick3:
		return "Pick3"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PickIndex returns the puzzle index a pick action selects, or 0.
func (a Action) PickIndex() int {
	switch a {
	case ActionPick1:
		return 1
	case ActionPick2:
		return 2
	case ActionPick3:
		return 3
	default:
		return 0
	}
}

// Pointer is a mouse click in screen coordinates.
type Pointer struct {
	X, Y int
}

// InputFrame is the input collected between two ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Clicks holds mouse clicks in arrival order.
	Clicks []Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Click records a mouse click at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Pointer{X: x, Y: y})
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether nothing was pressed or clicked.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return len(f.Clicks) == 0
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
