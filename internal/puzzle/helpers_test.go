package puzzle

import (
	"testing"

	"github.com/charmbracelet/log"
)

var config1 = Grid{
	{"in", "vis", "i", "ble"},
	{"im", "mac", "u", "late"},
	{"af", "fil", "i", "ate"},
	{"un", "der", "wa", "ter"},
}

var config2 = Grid{
	{"ex", "am", "in", "ing"},
	{"re", "in", "force", "ment"},
	{"in", "for", "ma", "tive"},
	{"ma", "te", "ri", "al"},
}

// scramble builds a starting grid from source coordinates, row-major.
func scramble(target Grid, from [][2]int) Grid {
	g := EmptyGrid(target.Rows(), target.Columns())
	for i, src := range from {
		g[i/target.Columns()][i%target.Columns()] = target[src[0]][src[1]]
	}
	return g
}

var initialConfig1 = scramble(config1, [][2]int{
	{3, 3}, {2, 3}, {0, 3}, {3, 1},
	{2, 1}, {0, 0}, {1, 0}, {0, 2},
	{2, 2}, {1, 3}, {1, 1}, {3, 0},
	{1, 2}, {0, 1}, {2, 0}, {3, 2},
})

var initialConfig2 = scramble(config2, [][2]int{
	{1, 2}, {1, 3}, {3, 3}, {0, 2},
	{2, 1}, {2, 2}, {0, 1}, {1, 1},
	{2, 3}, {3, 0}, {0, 3}, {2, 0},
	{3, 2}, {1, 0}, {3, 1}, {0, 0},
})

// testCatalog is an in-memory Catalog for tests.
type testCatalog struct {
	targets   map[int]Grid
	scrambled map[int]Grid
	fallback  Grid
}

func newTestCatalog() *testCatalog {
	return &testCatalog{
		targets:   map[int]Grid{1: config1, 2: config2},
		scrambled: map[int]Grid{1: initialConfig1, 2: initialConfig2},
		fallback:  initialConfig1,
	}
}

func (c *testCatalog) Target(index int) (Grid, bool) {
	g, ok := c.targets[index]
	return g, ok
}

func (c *testCatalog) Scrambled(index int) (Grid, bool) {
	g, ok := c.scrambled[index]
	return g, ok
}

func (c *testCatalog) DefaultTarget() Grid {
	return c.fallback
}

// victoryRecorder collects victory events.
type victoryRecorder struct {
	events []Victory
}

func (r *victoryRecorder) Victory(v Victory) {
	r.events = append(r.events, v)
}

// newTestSession returns a session with configuration 1 loaded on both the
// board and the grader, and a recorder attached as notifier.
func newTestSession() (*Session, *victoryRecorder) {
	s := NewSession(newTestCatalog())
	s.SetLogger(log.New(discard{}))
	s.SelectConfig(1)
	s.Grader().SelectConfig(1)
	rec := &victoryRecorder{}
	s.Grader().SetNotifier(rec)
	return s, rec
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// setLabels overwrites labels in place, keeping piece identities.
func setLabels(p *Puzzle, g Grid) {
	for r, row := range g {
		for c, label := range row {
			p.PieceAt(r, c).Label = label
		}
	}
}

// checkPlacement fails the test if any piece disagrees with its slot.
func checkPlacement(t testing.TB, p *Puzzle) {
	t.Helper()
	for r := 0; r < p.Rows(); r++ {
		for c := 0; c < p.Columns(); c++ {
			piece := p.PieceAt(r, c)
			if piece.Row != r || piece.Column != c {
				t.Errorf("piece at (%d,%d) reports (%d,%d)", r, c, piece.Row, piece.Column)
			}
		}
	}
}
