package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-syllables/internal/puzzle"
)

// ErrInvalidCatalog is returned when the puzzle configuration cannot be used.
var ErrInvalidCatalog = errors.New("invalid puzzle catalog")

// Entry is one validated puzzle of the catalogue.
type Entry struct {
	Index     int
	Name      string
	Target    puzzle.Grid
	Scrambled puzzle.Grid
}

// Catalog is a validated, read-only puzzle catalogue.
// It satisfies puzzle.Catalog.
type Catalog struct {
	board   puzzle.BoardSpec
	entries map[int]Entry
	order   []int
}

var _ puzzle.Catalog = (*Catalog)(nil)

// NewCatalog validates cfg and builds the scrambled grid of every puzzle.
func NewCatalog(cfg SyllablesConfig) (*Catalog, error) {
	spec := cfg.Board.Spec()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(cfg.Puzzles) == 0 {
		return nil, fmt.Errorf("%w: no puzzles defined", ErrInvalidCatalog)
	}

	c := &Catalog{
		board:   spec,
		entries: make(map[int]Entry, len(cfg.Puzzles)),
	}
	for _, pc := range cfg.Puzzles {
		if pc.Index <= 0 {
			return nil, fmt.Errorf("%w: puzzle index %d must be positive", ErrInvalidCatalog, pc.Index)
		}
		if _, dup := c.entries[pc.Index]; dup {
			return nil, fmt.Errorf("%w: duplicate puzzle index %d", ErrInvalidCatalog, pc.Index)
		}
		target := puzzle.Grid(pc.Target)
		if !target.HasShape(spec.Rows, spec.Columns) {
			return nil, fmt.Errorf("%w: puzzle %d target is not %dx%d",
				ErrInvalidCatalog, pc.Index, spec.Rows, spec.Columns)
		}
		scrambled, err := scramble(target, pc.Scramble)
		if err != nil {
			return nil, fmt.Errorf("%w: puzzle %d: %v", ErrInvalidCatalog, pc.Index, err)
		}
		name := pc.Name
		if name == "" {
			name = fmt.Sprintf("Puzzle %d", pc.Index)
		}
		c.entries[pc.Index] = Entry{
			Index:     pc.Index,
			Name:      name,
			Target:    target.Clone(),
			Scrambled: scrambled,
		}
		c.order = append(c.order, pc.Index)
	}
	sort.Ints(c.order)
	return c, nil
}

// scramble builds the starting grid: cell k (row-major) takes the target
// label at perm[k]. perm must be a permutation of the target cells.
func scramble(target puzzle.Grid, perm [][]int) (puzzle.Grid, error) {
	rows, cols := target.Rows(), target.Columns()
	if len(perm) != rows*cols {
		return nil, fmt.Errorf("scramble has %d cells, want %d", len(perm), rows*cols)
	}
	seen := make(map[puzzle.Coordinate]bool, len(perm))
	out := puzzle.EmptyGrid(rows, cols)
	for k, src := range perm {
		if len(src) != 2 {
			return nil, fmt.Errorf("scramble cell %d must be [row, col]", k)
		}
		from := puzzle.At(src[0], src[1])
		if from.Row < 0 || from.Row >= rows || from.Column < 0 || from.Column >= cols {
			return nil, fmt.Errorf("scramble cell %d references %s outside the board", k, from)
		}
		if seen[from] {
			return nil, fmt.Errorf("scramble references %s twice", from)
		}
		seen[from] = true
		out[k/cols][k%cols] = target[from.Row][from.Column]
	}
	return out, nil
}

// Board returns the board size every puzzle is laid out on.
func (c *Catalog) Board() puzzle.BoardSpec {
	return c.board
}

// Len returns the number of puzzles.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Indices returns the puzzle indices in ascending order.
func (c *Catalog) Indices() []int {
	return append([]int(nil), c.order...)
}

// Entries returns every puzzle in ascending index order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, idx := range c.order {
		out = append(out, c.entries[idx])
	}
	return out
}

// Entry looks up a puzzle by index.
func (c *Catalog) Entry(index int) (Entry, bool) {
	e, ok := c.entries[index]
	return e, ok
}

// Name returns the display name of a puzzle, or "" if it does not exist.
func (c *Catalog) Name(index int) string {
	return c.entries[index].Name
}

// Target returns a copy of the solved grid of a puzzle.
func (c *Catalog) Target(index int) (puzzle.Grid, bool) {
	e, ok := c.entries[index]
	if !ok {
		return nil, false
	}
	return e.Target.Clone(), true
}

// Scrambled returns a copy of the starting grid of a puzzle.
func (c *Catalog) Scrambled(index int) (puzzle.Grid, bool) {
	e, ok := c.entries[index]
	if !ok {
		return nil, false
	}
	return e.Scrambled.Clone(), true
}

// DefaultTarget returns the grid the grader compares against before any
// puzzle is selected: the starting layout of the lowest-indexed puzzle.
func (c *Catalog) DefaultTarget() puzzle.Grid {
	return c.entries[c.order[0]].Scrambled.Clone()
}
