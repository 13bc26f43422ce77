package puzzle

import (
	"errors"
	"testing"
)

func TestCoordinate(t *testing.T) {
	c := At(4, 4)
	if c.Row != 4 || c.Column != 4 {
		t.Errorf("At(4, 4) = %v", c)
	}
	if c.String() != "(4,4)" {
		t.Errorf("String() = %q, expected (4,4)", c.String())
	}
}

func TestPieceFlags(t *testing.T) {
	p := NewPiece("A", 1)
	if p.Label != "A" || p.Number != 1 {
		t.Fatalf("NewPiece = %+v", p)
	}
	if p.Row != 0 || p.Column != 0 || p.IsGraded || p.IsScored {
		t.Errorf("new piece should be unplaced and unflagged: %+v", p)
	}

	p.Place(2, 3)
	if loc := p.Location(); loc != At(2, 3) {
		t.Errorf("Location() = %v, expected (2,3)", loc)
	}

	p.MarkAsGraded()
	p.MarkAsScored()
	if !p.IsGraded || !p.IsScored {
		t.Error("flags should be set")
	}
	p.ResetGrading()
	if p.IsGraded || !p.IsScored {
		t.Error("ResetGrading should only clear the graded flag")
	}
	p.ResetScoring()
	if p.IsScored {
		t.Error("ResetScoring should clear the scored flag")
	}
}

func TestNewPuzzleDimensions(t *testing.T) {
	p := NewPuzzle(3, 4)
	if p.Rows() != 3 || p.Columns() != 4 || p.Size() != 12 {
		t.Errorf("NewPuzzle(3, 4) = %dx%d (%d)", p.Rows(), p.Columns(), p.Size())
	}
	if p.PieceAt(0, 0).Label != "" || p.PieceAt(0, 0).Number != 0 {
		t.Errorf("placeholder = %+v", p.PieceAt(0, 0))
	}
	checkPlacement(t, p)
}

func TestNewPuzzlePlaceholdersAreIndependent(t *testing.T) {
	p := NewPuzzle(2, 2)
	p.PieceAt(0, 0).Label = "x"
	if p.PieceAt(1, 1).Label != "" {
		t.Error("placeholder pieces must not alias each other")
	}
}

func TestPuzzleSelectConfig(t *testing.T) {
	p := NewPuzzle(2, 2)
	if err := p.SelectConfig(Grid{{"A", "B"}, {"C", "D"}}); err != nil {
		t.Fatalf("SelectConfig() failed: %v", err)
	}

	tests := []struct {
		row, col int
		label    string
		number   int
	}{
		{0, 0, "A", 0},
		{0, 1, "B", 1},
		{1, 0, "C", 2},
		{1, 1, "D", 3},
	}
	for _, tc := range tests {
		piece := p.PieceAt(tc.row, tc.col)
		if piece.Label != tc.label || piece.Number != tc.number {
			t.Errorf("(%d,%d) = %q #%d, expected %q #%d",
				tc.row, tc.col, piece.Label, piece.Number, tc.label, tc.number)
		}
	}
	checkPlacement(t, p)
}

func TestPuzzleSelectConfigReplacesPieces(t *testing.T) {
	p := NewPuzzle(2, 2)
	old := p.PieceAt(0, 0)
	old.MarkAsScored()

	if err := p.SelectConfig(Grid{{"A", "B"}, {"C", "D"}}); err != nil {
		t.Fatalf("SelectConfig() failed: %v", err)
	}
	if p.PieceAt(0, 0) == old {
		t.Error("SelectConfig should install new piece instances")
	}
	if p.ScoredCount() != 0 {
		t.Error("replacement pieces should start unscored")
	}
}

func TestPuzzleSelectConfigShapeMismatch(t *testing.T) {
	p := NewPuzzle(2, 2)
	tests := []struct {
		name string
		grid Grid
	}{
		{"too many rows", Grid{{"A", "B"}, {"C", "D"}, {"E", "F"}}},
		{"too few columns", Grid{{"A"}, {"C"}}},
		{"ragged", Grid{{"A", "B"}, {"C"}}},
		{"empty", Grid{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := p.SelectConfig(tc.grid)
			if !errors.Is(err, ErrShapeMismatch) {
				t.Errorf("SelectConfig() error = %v, expected ErrShapeMismatch", err)
			}
		})
	}
}

func TestPuzzleSwap(t *testing.T) {
	p := NewPuzzle(2, 2)
	//nolint:errcheck // Shape is known to match
	p.SelectConfig(Grid{{"A", "B"}, {"C", "D"}})
	a := p.PieceAt(0, 0)

	p.Swap(At(0, 0), At(1, 1))
	if p.PieceAt(1, 1) != a {
		t.Error("Swap should move the piece itself, not copy its label")
	}
	if a.Number != 0 {
		t.Errorf("number should travel with the piece, got %d", a.Number)
	}
	if p.Labels()[0][0] != "D" || p.Labels()[1][1] != "A" {
		t.Errorf("Labels() after swap = %v", p.Labels())
	}
	checkPlacement(t, p)

	p.Swap(At(0, 1), At(0, 1))
	if p.PieceAt(0, 1).Label != "B" {
		t.Error("self-swap should be a no-op")
	}
}

func TestGridLabelPositions(t *testing.T) {
	positions := initialConfig1.LabelPositions()

	tests := []struct {
		label    string
		expected []Coordinate
	}{
		{"wa", []Coordinate{At(3, 3)}},
		{"ate", []Coordinate{At(0, 1)}},
		{"ter", []Coordinate{At(0, 0)}},
		{"i", []Coordinate{At(1, 3), At(2, 0)}},
	}
	for _, tc := range tests {
		got := positions[tc.label]
		if len(got) != len(tc.expected) {
			t.Errorf("positions[%q] = %v, expected %v", tc.label, got, tc.expected)
			continue
		}
		for i := range got {
			if got[i] != tc.expected[i] {
				t.Errorf("positions[%q] = %v, expected %v", tc.label, got, tc.expected)
			}
		}
	}
	if _, ok := positions["zzz"]; ok {
		t.Error("unknown label should have no positions")
	}
}

func TestGridShape(t *testing.T) {
	g := EmptyGrid(3, 2)
	if !g.HasShape(3, 2) || g.HasShape(2, 3) {
		t.Errorf("EmptyGrid(3, 2) shape = %dx%d", g.Rows(), g.Columns())
	}
	if (Grid{}).IsRectangular() {
		t.Error("empty grid is not rectangular")
	}

	clone := config1.Clone()
	clone[0][0] = "changed"
	if config1[0][0] != "in" {
		t.Error("Clone should not share rows")
	}
}
