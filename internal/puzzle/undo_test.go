package puzzle

import "testing"

func TestUndoRestoresLastSwap(t *testing.T) {
	s, _ := newTestSession()
	l := NewMoveLog(s)
	u := NewUndoer(l)

	l.HandleCellClick(0, 0)
	l.HandleCellClick(1, 1)

	if !u.UndoMove() {
		t.Fatal("UndoMove() should report an undo")
	}

	p := s.Puzzle()
	if p.PieceAt(0, 0).Label != "ter" || p.PieceAt(1, 1).Label != "in" {
		t.Errorf("after undo (0,0)=%q (1,1)=%q, expected ter/in",
			p.PieceAt(0, 0).Label, p.PieceAt(1, 1).Label)
	}
	if s.Moves() != 0 {
		t.Errorf("Moves() = %d, expected 0", s.Moves())
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", l.Len())
	}
	checkPlacement(t, p)
}

func TestUndoEmptyHistoryIsNoop(t *testing.T) {
	s, _ := newTestSession()
	u := NewUndoer(NewMoveLog(s))
	before := s.Puzzle().Labels()

	if u.UndoMove() {
		t.Error("UndoMove() on empty history should report no undo")
	}
	if s.Moves() != 0 {
		t.Errorf("Moves() = %d, expected 0", s.Moves())
	}
	if s.Puzzle().Labels()[0][0] != before[0][0] {
		t.Error("board should be untouched")
	}
}

func TestUndoUnwindsInOrder(t *testing.T) {
	s, _ := newTestSession()
	l := NewMoveLog(s)
	u := NewUndoer(l)
	start := s.Puzzle().Labels()

	l.HandleCellClick(0, 0)
	l.HandleCellClick(1, 1)
	afterFirst := s.Puzzle().Labels()
	l.HandleCellClick(0, 1)
	l.HandleCellClick(1, 0)

	if s.Moves() != 2 {
		t.Fatalf("Moves() = %d, expected 2", s.Moves())
	}

	u.UndoMove()
	if s.Moves() != 1 || l.Len() != 1 {
		t.Errorf("after first undo moves=%d history=%d, expected 1/1", s.Moves(), l.Len())
	}
	if got := s.Puzzle().Labels(); got[0][1] != afterFirst[0][1] || got[1][0] != afterFirst[1][0] {
		t.Errorf("first undo should revert the second swap, got %v", got)
	}

	u.UndoMove()
	if s.Moves() != 0 || l.Len() != 0 {
		t.Errorf("after second undo moves=%d history=%d, expected 0/0", s.Moves(), l.Len())
	}
	if got := s.Puzzle().Labels(); got[0][0] != start[0][0] || got[1][1] != start[1][1] {
		t.Errorf("second undo should revert the first swap, got %v", got)
	}

	if u.UndoMove() {
		t.Error("third undo should be a no-op")
	}
}

func TestUndoNetEffect(t *testing.T) {
	s, _ := newTestSession()
	l := NewMoveLog(s)
	u := NewUndoer(l)

	l.SwapCells(3, 3, 2, 2)
	l.SwapCells(0, 2, 1, 3)
	moves, depth := s.Moves(), l.Len()
	a, b := s.Puzzle().PieceAt(0, 2), s.Puzzle().PieceAt(1, 3)

	u.UndoMove()

	if s.Moves() != moves-1 {
		t.Errorf("Moves() = %d, expected %d", s.Moves(), moves-1)
	}
	if l.Len() != depth-1 {
		t.Errorf("Len() = %d, expected %d", l.Len(), depth-1)
	}
	if s.Puzzle().PieceAt(1, 3) != a || s.Puzzle().PieceAt(0, 2) != b {
		t.Error("undo should move the same pieces back")
	}
	if h := l.History(); h[len(h)-1] != (Move{Row1: 3, Col1: 3, Row2: 2, Col2: 2}) {
		t.Errorf("remaining history = %+v", h)
	}
}

func TestUndoAfterConfigChangeReplaysCoordinates(t *testing.T) {
	s, _ := newTestSession()
	l := NewMoveLog(s)
	u := NewUndoer(l)

	l.SwapCells(0, 0, 0, 1)
	s.SelectConfig(2)
	before := s.Puzzle().Labels()

	u.UndoMove()

	after := s.Puzzle().Labels()
	if after[0][0] != before[0][1] || after[0][1] != before[0][0] {
		t.Errorf("stale undo should swap whatever occupies the cells, got %v", after[0])
	}
}
