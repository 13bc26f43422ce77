// Package puzzle implements the syllable-swap puzzle state machine: the board
// of labeled pieces, the swap/undo move log and the row-contiguity grader.
// It has no UI dependencies; the platform re-reads state after every call.
package puzzle

import "fmt"

// Coordinate is an immutable (row, column) pair on the board.
type Coordinate struct {
	Row    int
	Column int
}

// At is a convenience constructor for Coordinate.
func At(row, column int) Coordinate {
	return Coordinate{Row: row, Column: column}
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
}

// Piece is a single labeled tile occupying one board cell.
type Piece struct {
	Label  string // Syllable text
	Number int    // Row-major index assigned when the piece was created
	Row    int
	Column int

	IsGraded bool // Highlight flag, independent of scoring
	IsScored bool // Counted by the grader in the current pass
}

// NewPiece creates an unplaced, ungraded piece.
func NewPiece(label string, number int) *Piece {
	return &Piece{Label: label, Number: number}
}

// Place records the cell the piece now occupies.
func (p *Piece) Place(row, column int) {
	p.Row = row
	p.Column = column
}

// Location returns the piece's current cell.
func (p *Piece) Location() Coordinate {
	return At(p.Row, p.Column)
}

func (p *Piece) MarkAsGraded() { p.IsGraded = true }
func (p *Piece) ResetGrading() { p.IsGraded = false }
func (p *Piece) MarkAsScored() { p.IsScored = true }
func (p *Piece) ResetScoring() { p.IsScored = false }
