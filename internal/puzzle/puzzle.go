package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBoard is returned for non-positive board dimensions.
	ErrInvalidBoard = errors.New("puzzle: board dimensions must be positive")

	// ErrShapeMismatch is returned when a configuration does not fit the board.
	ErrShapeMismatch = errors.New("puzzle: configuration shape does not match board")
)

// Puzzle owns a fixed rows x columns array of pieces.
// Exactly one piece occupies each cell, and each piece's Row/Column always
// match its slot once a mutating call returns.
type Puzzle struct {
	numRows    int
	numColumns int
	pieces     [][]*Piece
}

// NewPuzzle creates a board filled with independent placeholder pieces.
// Callers must pass positive dimensions; Session.Initialize validates them.
func NewPuzzle(numRows, numColumns int) *Puzzle {
	p := &Puzzle{numRows: numRows, numColumns: numColumns}
	p.pieces = make([][]*Piece, numRows)
	for r := range p.pieces {
		p.pieces[r] = make([]*Piece, numColumns)
		for c := range p.pieces[r] {
			p.pieces[r][c] = NewPiece("", 0)
			p.pieces[r][c].Place(r, c)
		}
	}
	return p
}

// Rows returns the number of rows.
func (p *Puzzle) Rows() int {
	return p.numRows
}

// Columns returns the number of columns.
func (p *Puzzle) Columns() int {
	return p.numColumns
}

// Size returns the total number of cells.
func (p *Puzzle) Size() int {
	return p.numRows * p.numColumns
}

// InBounds reports whether (row, column) is a cell on this board.
func (p *Puzzle) InBounds(row, column int) bool {
	return row >= 0 && row < p.numRows && column >= 0 && column < p.numColumns
}

// PieceAt returns the piece currently at (row, column).
// Coordinates outside the board are the caller's responsibility.
func (p *Puzzle) PieceAt(row, column int) *Piece {
	return p.pieces[row][column]
}

// SelectConfig replaces every piece with a fresh one labeled from grid,
// numbered by row-major index. Prior piece identities are discarded.
func (p *Puzzle) SelectConfig(grid Grid) error {
	if !grid.HasShape(p.numRows, p.numColumns) {
		return fmt.Errorf("%w: got %dx%d, board is %dx%d",
			ErrShapeMismatch, grid.Rows(), grid.Columns(), p.numRows, p.numColumns)
	}

	number := 0
	pieces := make([][]*Piece, p.numRows)
	for r, row := range grid {
		pieces[r] = make([]*Piece, p.numColumns)
		for c, label := range row {
			piece := NewPiece(label, number)
			piece.Place(r, c)
			pieces[r][c] = piece
			number++
		}
	}
	p.pieces = pieces
	return nil
}

// Swap exchanges the pieces at a and b. Swapping a cell with itself is a no-op.
func (p *Puzzle) Swap(a, b Coordinate) {
	first := p.pieces[a.Row][a.Column]
	second := p.pieces[b.Row][b.Column]
	p.pieces[a.Row][a.Column] = second
	p.pieces[b.Row][b.Column] = first
	second.Place(a.Row, a.Column)
	first.Place(b.Row, b.Column)
}

// Labels returns the current labels as a Grid.
func (p *Puzzle) Labels() Grid {
	g := EmptyGrid(p.numRows, p.numColumns)
	p.Each(func(piece *Piece) {
		g[piece.Row][piece.Column] = piece.Label
	})
	return g
}

// Each calls fn for every piece in row-major order.
func (p *Puzzle) Each(fn func(*Piece)) {
	for _, row := range p.pieces {
		for _, piece := range row {
			fn(piece)
		}
	}
}

// ScoredCount returns the number of pieces flagged as scored.
func (p *Puzzle) ScoredCount() int {
	n := 0
	p.Each(func(piece *Piece) {
		if piece.IsScored {
			n++
		}
	})
	return n
}
