package puzzle

// noRow marks a row scan that has not committed to a target row yet.
const noRow = -1

// Grader scores the board against the active target configuration.
//
// A cell scores when it extends an unbroken, left-anchored run of matches in
// its row, and every cell of the run comes from the same target row (the
// row committed to by the run's first cell). Column alignment is checked
// against each candidate target position; the candidate's row is only
// compared with the committed row, never with the physical row being scanned.
type Grader struct {
	board    Board
	catalog  Catalog
	target   Grid
	index    int
	notifier Notifier
}

// NewGrader creates a grader comparing against the catalogue's default target.
func NewGrader(board Board, catalog Catalog) *Grader {
	return &Grader{
		board:    board,
		catalog:  catalog,
		target:   catalog.DefaultTarget(),
		notifier: LogNotifier{},
	}
}

// SetNotifier replaces the victory notifier. nil restores the log notifier.
func (g *Grader) SetNotifier(n Notifier) {
	if n == nil {
		n = LogNotifier{}
	}
	g.notifier = n
}

// SelectConfig sets the active target. Unknown indices fall back to the
// default target. No grading is performed.
func (g *Grader) SelectConfig(index int) {
	g.index = index
	if target, ok := g.catalog.Target(index); ok {
		g.target = target
		return
	}
	g.target = g.catalog.DefaultTarget()
}

// Target returns the active target grid.
func (g *Grader) Target() Grid {
	return g.target
}

// GradePuzzle recomputes scoring from scratch and stores the count on the
// board. A fully scored board fires a victory and resets the game before
// returning; the returned count is the one computed by this pass.
func (g *Grader) GradePuzzle() (grades int, victory bool) {
	p := g.board.Puzzle()
	p.Each(func(piece *Piece) { piece.ResetScoring() })

	positions := g.target.LabelPositions()
	scoredLabels := make(map[string]int)

	score := func(piece *Piece) {
		piece.MarkAsScored()
		scoredLabels[piece.Label]++
		grades++
	}

	for row := 0; row < p.Rows(); row++ {
		canExtend := true
		committedRow := noRow

		for col := 0; col < p.Columns(); col++ {
			piece := p.PieceAt(row, col)
			candidates := positions[piece.Label]
			used := scoredLabels[piece.Label]
			scored := false

			for _, target := range candidates {
				if col == 0 {
					if columnMatches(col, target) {
						score(piece)
						scored = true
						canExtend = true
						committedRow = target.Row
						break
					}
					canExtend = false
				} else if canExtend && p.PieceAt(row, col-1).IsScored {
					if columnMatches(col, target) && target.Row == committedRow {
						score(piece)
						scored = true
						break
					}
					canExtend = false
				}
			}

			// Second chance for repeated labels: any candidate on the committed
			// row, while the label still has unused target positions.
			if scored || col == 0 || !p.PieceAt(row, col-1).IsScored {
				continue
			}
			for _, target := range candidates {
				if columnMatches(col, target) && target.Row == committedRow && used < len(candidates) {
					score(piece)
					break
				}
			}
		}
	}

	g.board.SetGrades(grades)
	if grades != p.Size() {
		return grades, false
	}

	g.notifier.Victory(Victory{
		ConfigIndex: g.index,
		Moves:       g.board.Moves(),
		Grades:      grades,
	})
	g.ResetGame()
	return grades, true
}

// columnMatches accepts a target position whose column equals col,
// whatever its row.
func columnMatches(col int, target Coordinate) bool {
	return target.Column == col
}

// ResetGrades clears the scored and graded flags without touching layout
// or counters.
func (g *Grader) ResetGrades() {
	g.board.Puzzle().Each(func(piece *Piece) {
		piece.ResetScoring()
		piece.ResetGrading()
	})
}

// ResetGame restores the initial configuration, zeroes both counters and
// clears grading.
func (g *Grader) ResetGame() {
	g.board.ResetPuzzle()
	g.board.SetMoves(0)
	g.board.SetGrades(0)
	g.ResetGrades()
}
