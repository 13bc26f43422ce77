package config

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-syllables/internal/puzzle"
)

func TestNewCatalogDefaults(t *testing.T) {
	cat, err := NewCatalog(DefaultSyllablesConfig())
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}

	if cat.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", cat.Len())
	}
	if got := cat.Indices(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("Indices() = %v, expected [1 2 3]", got)
	}
	if cat.Name(2) != "Examining" {
		t.Errorf("Name(2) = %q, expected %q", cat.Name(2), "Examining")
	}
	if cat.Name(9) != "" {
		t.Errorf("Name(9) = %q, expected empty", cat.Name(9))
	}
	if b := cat.Board(); b.Rows != 4 || b.Columns != 4 {
		t.Errorf("Board() = %+v, expected 4x4", b)
	}
}

func TestCatalogScrambledLayouts(t *testing.T) {
	cat, err := NewCatalog(DefaultSyllablesConfig())
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}

	tests := []struct {
		index int
		row   int
		want  []string
	}{
		{1, 0, []string{"ter", "ate", "ble", "der"}},
		{1, 3, []string{"u", "vis", "af", "wa"}},
		{2, 0, []string{"force", "ment", "al", "in"}},
		{2, 3, []string{"ri", "re", "te", "ex"}},
		{3, 0, []string{"al", "di", "me", "di"}},
		{3, 3, []string{"on", "ate", "ag", "chan"}},
	}

	for _, tt := range tests {
		grid, ok := cat.Scrambled(tt.index)
		if !ok {
			t.Fatalf("Scrambled(%d) not found", tt.index)
		}
		if !reflect.DeepEqual(grid[tt.row], tt.want) {
			t.Errorf("Scrambled(%d)[%d] = %v, expected %v", tt.index, tt.row, grid[tt.row], tt.want)
		}
	}
}

func TestCatalogScrambleIsPermutation(t *testing.T) {
	cat, err := NewCatalog(DefaultSyllablesConfig())
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}

	for _, e := range cat.Entries() {
		counts := make(map[string]int)
		for _, row := range e.Target {
			for _, label := range row {
				counts[label]++
			}
		}
		for _, row := range e.Scrambled {
			for _, label := range row {
				counts[label]--
			}
		}
		for label, n := range counts {
			if n != 0 {
				t.Errorf("puzzle %d: label %q count differs by %d", e.Index, label, n)
			}
		}
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	cat, err := NewCatalog(DefaultSyllablesConfig())
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}

	target, _ := cat.Target(1)
	target[0][0] = "zz"
	again, _ := cat.Target(1)
	if again[0][0] != "in" {
		t.Errorf("Target(1)[0][0] = %q after caller mutation, expected %q", again[0][0], "in")
	}

	def := cat.DefaultTarget()
	scrambled, _ := cat.Scrambled(1)
	if !reflect.DeepEqual(def, scrambled) {
		t.Errorf("DefaultTarget() = %v, expected Scrambled(1)", def)
	}

	if _, ok := cat.Target(42); ok {
		t.Error("Target(42) should not exist")
	}
	if _, ok := cat.Scrambled(0); ok {
		t.Error("Scrambled(0) should not exist")
	}
}

func TestCatalogDrivesSession(t *testing.T) {
	cat, err := NewCatalog(DefaultSyllablesConfig())
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}

	s := puzzle.NewSession(cat)
	s.SelectConfig(1)
	s.Grader().SelectConfig(1)

	if got := s.Puzzle().PieceAt(0, 0).Label; got != "ter" {
		t.Errorf("PieceAt(0,0).Label = %q, expected %q", got, "ter")
	}
	if grades, _ := s.Grader().GradePuzzle(); grades != 0 {
		t.Errorf("GradePuzzle() = %d on the scrambled board, expected 0", grades)
	}
}

func TestNewCatalogRejectsInvalid(t *testing.T) {
	valid := func() SyllablesConfig {
		return SyllablesConfig{
			Board: BoardConfig{Rows: 1, Columns: 2},
			Puzzles: []PuzzleConfig{
				{Index: 1, Target: [][]string{{"a", "b"}}, Scramble: [][]int{{0, 1}, {0, 0}}},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*SyllablesConfig)
	}{
		{"zero board", func(c *SyllablesConfig) { c.Board.Rows = 0 }},
		{"no puzzles", func(c *SyllablesConfig) { c.Puzzles = nil }},
		{"non-positive index", func(c *SyllablesConfig) { c.Puzzles[0].Index = 0 }},
		{"duplicate index", func(c *SyllablesConfig) { c.Puzzles = append(c.Puzzles, c.Puzzles[0]) }},
		{"target shape", func(c *SyllablesConfig) { c.Puzzles[0].Target = [][]string{{"a"}} }},
		{"short scramble", func(c *SyllablesConfig) { c.Puzzles[0].Scramble = [][]int{{0, 0}} }},
		{"bad pair", func(c *SyllablesConfig) { c.Puzzles[0].Scramble = [][]int{{0}, {0, 0}} }},
		{"out of bounds", func(c *SyllablesConfig) { c.Puzzles[0].Scramble = [][]int{{0, 2}, {0, 0}} }},
		{"repeated cell", func(c *SyllablesConfig) { c.Puzzles[0].Scramble = [][]int{{0, 0}, {0, 0}} }},
	}

	if _, err := NewCatalog(valid()); err != nil {
		t.Fatalf("NewCatalog(valid) failed: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			_, err := NewCatalog(cfg)
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("NewCatalog() error = %v, expected ErrInvalidCatalog", err)
			}
		})
	}
}

func TestNewCatalogDefaultName(t *testing.T) {
	cat, err := NewCatalog(SyllablesConfig{
		Board:   BoardConfig{Rows: 1, Columns: 1},
		Puzzles: []PuzzleConfig{{Index: 5, Target: [][]string{{"x"}}, Scramble: [][]int{{0, 0}}}},
	})
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	if cat.Name(5) != "Puzzle 5" {
		t.Errorf("Name(5) = %q, expected %q", cat.Name(5), "Puzzle 5")
	}
}
