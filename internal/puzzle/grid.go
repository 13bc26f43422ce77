package puzzle

// Grid is a rectangular arrangement of labels, row-major.
// Target and scrambled configurations are both Grids.
type Grid [][]string

// EmptyGrid returns a rows x columns grid of empty labels.
func EmptyGrid(rows, columns int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]string, columns)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Columns returns the width of the first row, or 0 for an empty grid.
func (g Grid) Columns() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// IsRectangular reports whether every row has the same, non-zero width.
func (g Grid) IsRectangular() bool {
	if len(g) == 0 || len(g[0]) == 0 {
		return false
	}
	for _, row := range g {
		if len(row) != len(g[0]) {
			return false
		}
	}
	return true
}

// HasShape reports whether the grid is exactly rows x columns.
func (g Grid) HasShape(rows, columns int) bool {
	return g.IsRectangular() && g.Rows() == rows && g.Columns() == columns
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]string(nil), row...)
	}
	return out
}

// LabelPositions maps each label to every cell where it appears,
// in row-major order. A label may appear more than once.
func (g Grid) LabelPositions() map[string][]Coordinate {
	positions := make(map[string][]Coordinate)
	for r, row := range g {
		for c, label := range row {
			positions[label] = append(positions[label], At(r, c))
		}
	}
	return positions
}
