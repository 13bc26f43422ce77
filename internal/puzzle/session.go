package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Default board shape and configuration for a new session.
const (
	DefaultRows        = 4
	DefaultColumns     = 4
	DefaultConfigIndex = 1
)

// BoardSpec is the board size, separate from puzzle content.
type BoardSpec struct {
	Rows    int
	Columns int
}

// ParseBoardSpec converts externally supplied dimensions.
func ParseBoardSpec(rows, columns string) (BoardSpec, error) {
	r, err := strconv.Atoi(strings.TrimSpace(rows))
	if err != nil {
		return BoardSpec{}, fmt.Errorf("puzzle: invalid rows %q: %w", rows, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(columns))
	if err != nil {
		return BoardSpec{}, fmt.Errorf("puzzle: invalid columns %q: %w", columns, err)
	}
	return BoardSpec{Rows: r, Columns: c}, nil
}

// Validate checks that both dimensions are positive.
func (b BoardSpec) Validate() error {
	if b.Rows <= 0 || b.Columns <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBoard, b.Rows, b.Columns)
	}
	return nil
}

// Session is one play session: the board, its counters, the selected
// configuration and the grader. It implements Board.
type Session struct {
	puzzle    *Puzzle
	catalog   Catalog
	grader    *Grader
	logger    *log.Logger
	numMoves  int
	numGrades int
	selected  int
}

// NewSession creates a 4x4 session over catalog with configuration 1 selected
// but not yet loaded.
func NewSession(catalog Catalog) *Session {
	s := &Session{
		puzzle:   NewPuzzle(DefaultRows, DefaultColumns),
		catalog:  catalog,
		logger:   log.Default(),
		selected: DefaultConfigIndex,
	}
	s.grader = NewGrader(s, catalog)
	return s
}

// SetLogger replaces the session logger.
func (s *Session) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Initialize rebuilds the board at the given size and zeroes both counters.
func (s *Session) Initialize(spec BoardSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	s.puzzle = NewPuzzle(spec.Rows, spec.Columns)
	s.numMoves = 0
	s.numGrades = 0
	return nil
}

// SelectConfig loads the scrambled grid for index, or an all-empty grid for
// unknown indices, and zeroes the grade count. The move count is kept.
func (s *Session) SelectConfig(index int) {
	grid, ok := s.catalog.Scrambled(index)
	if !ok {
		s.logger.Debug("unknown configuration, loading empty grid", "index", index)
		grid = EmptyGrid(s.puzzle.Rows(), s.puzzle.Columns())
	}

	if err := s.puzzle.SelectConfig(grid); err != nil {
		s.logger.Warn("configuration does not fit board, loading empty grid",
			"index", index, "error", err)
		//nolint:errcheck // Empty grid always matches the board shape
		s.puzzle.SelectConfig(EmptyGrid(s.puzzle.Rows(), s.puzzle.Columns()))
	}

	s.selected = index
	s.numGrades = 0
}

// ResetPuzzle reloads the selected configuration and zeroes both counters.
func (s *Session) ResetPuzzle() {
	s.SelectConfig(s.selected)
	s.numMoves = 0
	s.numGrades = 0
}

// SelectedConfig returns the active configuration index.
func (s *Session) SelectedConfig() int {
	return s.selected
}

// Grader returns the session's grading engine.
func (s *Session) Grader() *Grader {
	return s.grader
}

// Catalog returns the configuration provider.
func (s *Session) Catalog() Catalog {
	return s.catalog
}

func (s *Session) Puzzle() *Puzzle { return s.puzzle }
func (s *Session) Moves() int { return s.numMoves }
func (s *Session) SetMoves(n int) { s.numMoves = n }
func (s *Session) Grades() int { return s.numGrades }
func (s *Session) SetGrades(n int) { s.numGrades = n }

var _ Board = (*Session)(nil)
