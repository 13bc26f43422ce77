package puzzle

import "testing"

func TestHandleCellClickPendsThenSwaps(t *testing.T) {
	s, _ := newTestSession()
	l := NewMoveLog(s)

	if l.HandleCellClick(0, 0) {
		t.Fatal("first click should not swap")
	}
	if sel, ok := l.Selected(); !ok || sel != At(0, 0) {
		t.Errorf("Selected() = %v, %v; expected (0,0)", sel, ok)
	}
	if s.Moves() != 0 {
		t.Errorf("Moves() = %d after one click, expected 0", s.Moves())
	}

	if !l.HandleCellClick(1, 1) {
		t.Fatal("second click should swap")
	}
	if _, ok := l.Selected(); ok {
		t.Error("selection should clear after a swap")
	}

	p := s.Puzzle()
	if p.PieceAt(0, 0).Label != "in" || p.PieceAt(1, 1).Label != "ter" {
		t.Errorf("after swap (0,0)=%q (1,1)=%q, expected in/ter",
			p.PieceAt(0, 0).Label, p.PieceAt(1, 1).Label)
	}
	if s.Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", s.Moves())
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", l.Len())
	}
	if h := l.History(); h[0] != (Move{Row1: 0, Col1: 0, Row2: 1, Col2: 1}) {
		t.Errorf("History()[0] = %+v", h[0])
	}
	checkPlacement(t, p)
}

func TestHandleCellClickSameCellTwice(t *testing.T) {
	s, _ := newTestSession()
	l := NewMoveLog(s)

	l.HandleCellClick(2, 2)
	l.HandleCellClick(2, 2)

	if s.Puzzle().PieceAt(2, 2).Label != "mac" {
		t.Errorf("self-swap changed the board: %q", s.Puzzle().PieceAt(2, 2).Label)
	}
	if s.Moves() != 1 || l.Len() != 1 {
		t.Errorf("self-swap should still count: moves=%d history=%d", s.Moves(), l.Len())
	}
}

func TestSwapIsSelfInverse(t *testing.T) {
	s, _ := newTestSession()
	l := NewMoveLog(s)
	before := s.Puzzle().Labels()

	l.SwapCells(0, 1, 3, 2)
	l.SwapCells(0, 1, 3, 2)

	after := s.Puzzle().Labels()
	if after[0][1] != before[0][1] || after[3][2] != before[3][2] {
		t.Errorf("double swap should restore labels, got %q/%q", after[0][1], after[3][2])
	}
	if s.Moves() != 2 {
		t.Errorf("Moves() = %d, expected 2", s.Moves())
	}
}

func TestHistoryIsBounded(t *testing.T) {
	s, _ := newTestSession()
	l := NewMoveLog(s)

	oldest := Move{Row1: 0, Col1: 0, Row2: 0, Col2: 1}
	l.SwapCells(0, 0, 0, 1)
	for i := 0; i < HistoryLimit; i++ {
		l.SwapCells(1, 0, 1, 1)
	}

	if l.Len() != HistoryLimit {
		t.Fatalf("Len() = %d, expected %d", l.Len(), HistoryLimit)
	}
	for _, m := range l.History() {
		if m == oldest {
			t.Fatal("oldest move should have been evicted")
		}
	}
	if s.Moves() != HistoryLimit+1 {
		t.Errorf("Moves() = %d, eviction must not affect the counter", s.Moves())
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	s, _ := newTestSession()
	l := NewMoveLog(s)
	l.SwapCells(0, 0, 0, 1)

	h := l.History()
	h[0].Row1 = 3
	if l.History()[0].Row1 != 0 {
		t.Error("History() should not expose internal storage")
	}
}

func TestMoveLogReset(t *testing.T) {
	s, _ := newTestSession()
	l := NewMoveLog(s)

	l.SwapCells(0, 0, 1, 1)
	l.SwapCells(2, 2, 3, 3)
	s.SetGrades(5)
	l.HandleCellClick(0, 3)

	l.Reset()

	if s.Moves() != 0 || s.Grades() != 0 {
		t.Errorf("counters after Reset: moves=%d grades=%d", s.Moves(), s.Grades())
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after Reset", l.Len())
	}
	if _, ok := l.Selected(); ok {
		t.Error("pending cell should be cleared")
	}
	if got := s.Puzzle().Labels(); got[0][0] != "ter" || got[1][1] != "in" {
		t.Errorf("Reset should restore the scrambled layout, got %v", got)
	}
}

func TestClearSelection(t *testing.T) {
	s, _ := newTestSession()
	l := NewMoveLog(s)

	l.HandleCellClick(1, 2)
	l.ClearSelection()
	if l.HandleCellClick(0, 0) {
		t.Error("click after ClearSelection should start a new gesture")
	}
}
