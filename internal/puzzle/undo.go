package puzzle

// Undoer reverses the most recent swap recorded in a MoveLog.
type Undoer struct {
	log *MoveLog
}

// NewUndoer creates an undoer over log.
func NewUndoer(log *MoveLog) *Undoer {
	return &Undoer{log: log}
}

// UndoMove swaps the last recorded pair back and fixes up the ledger.
// The replay goes through SwapCells, which counts a move and records it,
// so the counter drops by two and the replayed entry is popped again.
// Net effect: one move and one history entry fewer. No-op on empty history.
func (u *Undoer) UndoMove() bool {
	last, ok := u.log.pop()
	if !ok {
		return false
	}

	u.log.SwapCells(last.Row1, last.Col1, last.Row2, last.Col2)

	board := u.log.board
	board.SetMoves(board.Moves() - 2)
	if u.log.Len() > 0 {
		u.log.pop()
	}
	return true
}
