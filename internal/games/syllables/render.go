package syllables

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-syllables/internal/core"
	"github.com/vovakirdan/tui-syllables/internal/puzzle"
)

const (
	hudHeight  = 3 // Title, status and history lines
	cellHeight = 2 // Content row plus the border below it
	footerRows = 3 // Blank line, message and controls
)

// layout places the board on the screen.
type layout struct {
	cellW          int // Content width of one cell
	boardX, boardY int
	boardW, boardH int
	minW, minH     int
}

func (g *Game) layout() layout {
	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Columns
	if g.session != nil {
		rows, cols = g.session.Puzzle().Rows(), g.session.Puzzle().Columns()
	}

	l := layout{cellW: g.cfg.Display.CellWidth}
	l.boardW = cols*(l.cellW+1) + 1
	l.boardH = rows*cellHeight + 1
	l.boardX = (g.screenW - l.boardW) / 2
	l.boardY = hudHeight + 1
	l.minW = max(l.boardW, 40)
	l.minH = l.boardY + l.boardH + footerRows
	return l
}

// cellAt maps a screen position to the board cell under it.
// Borders belong to no cell.
func (g *Game) cellAt(x, y int) (puzzle.Coordinate, bool) {
	if g.tooSmall || g.session == nil {
		return puzzle.Coordinate{}, false
	}
	l := g.layout()
	px, py := x-l.boardX, y-l.boardY
	if px <= 0 || py <= 0 || px%(l.cellW+1) == 0 || py%cellHeight == 0 {
		return puzzle.Coordinate{}, false
	}
	row, col := py/cellHeight, px/(l.cellW+1)
	if !g.session.Puzzle().InBounds(row, col) {
		return puzzle.Coordinate{}, false
	}
	return puzzle.At(row, col), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHUD(dst, l)
	g.renderBoard(dst, l)
	g.renderFooter(dst, l)

	switch {
	case g.paused:
		g.drawOverlay(dst, l, core.ColorYellow, "PAUSED", "Press P to resume")
	case g.victoryTicks > 0:
		lines := strings.Split(g.victory.Message(), "\n")
		g.drawOverlay(dst, l, core.ColorBrightGreen, lines...)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

// renderHUD draws the title, puzzle and counters.
func (g *Game) renderHUD(dst *core.Screen, l layout) {
	dst.DrawTextCentered(0, "SYLLABLES", core.ColorBrightCyan)

	p := g.session.Puzzle()
	left := "Puzzle: none"
	if g.chosen {
		index := g.session.SelectedConfig()
		left = fmt.Sprintf("Puzzle %d: %s", index, g.puzzleName(index))
	}
	right := fmt.Sprintf("Moves: %d  Grades: %d/%d", g.session.Moves(), g.session.Grades(), p.Size())

	x := (g.screenW - l.minW) / 2
	dst.DrawText(x, 1, left)
	dst.DrawText(x+l.minW-len(right), 2, right)
	dst.DrawTextColored(x, 2, fmt.Sprintf("History: %d", g.moves.Len()), core.ColorGray)
}

// renderBoard draws the grid lines and the labels.
func (g *Game) renderBoard(dst *core.Screen, l layout) {
	p := g.session.Puzzle()
	rows, cols := p.Rows(), p.Columns()
	stride := l.cellW + 1

	for y := 0; y <= rows; y++ {
		for x := 0; x <= cols; x++ {
			px := l.boardX + x*stride
			py := l.boardY + y*cellHeight
			dst.SetColored(px, py, junction(x, y, cols, rows), core.ColorGray)

			if x < cols {
				for i := 1; i < stride; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	pending, hasPending := g.moves.Selected()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			piece := p.PieceAt(r, c)
			cell := puzzle.At(r, c)
			cx := l.boardX + c*stride + 1
			cy := l.boardY + r*cellHeight + 1

			color := core.ColorWhite
			switch {
			case hasPending && pending == cell:
				color = core.ColorCyan
			case piece.IsScored:
				color = core.ColorGreen
			}

			label := fit(piece.Label, l.cellW-2)
			pad := (l.cellW - len([]rune(label))) / 2
			dst.DrawTextColored(cx+pad, cy, label, color)

			if cell == g.cursor {
				dst.SetColored(cx, cy, '[', core.ColorBrightYellow)
				dst.SetColored(cx+l.cellW-1, cy, ']', core.ColorBrightYellow)
			}
		}
	}
}

// renderFooter draws the status message and the controls.
func (g *Game) renderFooter(dst *core.Screen, l layout) {
	y := l.boardY + l.boardH + 1
	msg := g.message
	if !g.chosen && msg == "" {
		msg = "Press 1, 2 or 3 to choose a puzzle."
	}
	dst.DrawTextCentered(y, msg, core.ColorYellow)
	dst.DrawTextCentered(y+1, g.Controls(), core.ColorGray)
}

// drawOverlay draws a boxed message centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, l layout, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(0, 0, maxLen+4, len(lines)+2)
	box.X = l.boardX + (l.boardW-box.W)/2
	box.Y = l.boardY + (l.boardH-box.H)/2

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, color)
	for i, line := range lines {
		dst.DrawTextColored(box.X+(box.W-len(line))/2, box.Y+1+i, line, color)
	}
}

// junction picks the box-drawing rune for a grid intersection.
func junction(x, y, cols, rows int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == cols:
		return '┐'
	case y == rows && x == 0:
		return '└'
	case y == rows && x == cols:
		return '┘'
	case y == 0:
		return '┬'
	case y == rows:
		return '┴'
	case x == 0:
		return '├'
	case x == cols:
		return '┤'
	default:
		return '┼'
	}
}

// fit truncates s to at most n runes.
func fit(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
