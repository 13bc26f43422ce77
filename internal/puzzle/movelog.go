package puzzle

// HistoryLimit is the number of moves the log keeps before evicting the oldest.
const HistoryLimit = 100

// Move is a completed swap of two cells.
type Move struct {
	Row1, Col1 int
	Row2, Col2 int
}

// MoveLog turns two-click gestures into swaps and keeps a bounded history.
type MoveLog struct {
	board   Board
	pending *Coordinate
	history []Move
}

// NewMoveLog creates an empty move log for board.
func NewMoveLog(board Board) *MoveLog {
	return &MoveLog{
		board:   board,
		history: make([]Move, 0, HistoryLimit),
	}
}

// HandleCellClick pends the first click and swaps on the second.
// It reports whether a swap was performed. Clicking the same cell twice
// swaps the cell with itself, which still counts as a move.
func (l *MoveLog) HandleCellClick(row, col int) bool {
	if l.pending == nil {
		l.pending = &Coordinate{Row: row, Column: col}
		return false
	}

	first := *l.pending
	l.SwapCells(first.Row, first.Column, row, col)
	l.pending = nil
	return true
}

// SwapCells exchanges two cells, counts a move and records it.
func (l *MoveLog) SwapCells(row1, col1, row2, col2 int) {
	l.board.Puzzle().Swap(At(row1, col1), At(row2, col2))
	l.board.SetMoves(l.board.Moves() + 1)
	l.record(Move{Row1: row1, Col1: col1, Row2: row2, Col2: col2})
}

// record appends m, evicting the oldest entry once the log is full.
func (l *MoveLog) record(m Move) {
	if len(l.history) == HistoryLimit {
		copy(l.history, l.history[1:])
		l.history = l.history[:HistoryLimit-1]
	}
	l.history = append(l.history, m)
}

// pop removes and returns the most recent move.
func (l *MoveLog) pop() (Move, bool) {
	if len(l.history) == 0 {
		return Move{}, false
	}
	last := l.history[len(l.history)-1]
	l.history = l.history[:len(l.history)-1]
	return last, true
}

// Selected returns the pending cell, if any.
func (l *MoveLog) Selected() (Coordinate, bool) {
	if l.pending == nil {
		return Coordinate{}, false
	}
	return *l.pending, true
}

// ClearSelection drops a pending half-swap without moving anything.
func (l *MoveLog) ClearSelection() {
	l.pending = nil
}

// History returns a copy of the recorded moves, oldest first.
func (l *MoveLog) History() []Move {
	out := make([]Move, len(l.history))
	copy(out, l.history)
	return out
}

// Len returns the number of recorded moves.
func (l *MoveLog) Len() int {
	return len(l.history)
}

// Reset restores the selected configuration, zeroes the counters and
// forgets all history and any pending click.
func (l *MoveLog) Reset() {
	l.board.ResetPuzzle()
	l.board.SetMoves(0)
	l.board.SetGrades(0)
	l.history = l.history[:0]
	l.pending = nil
}
