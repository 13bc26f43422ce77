// Package syllables implements the playable syllable-swap puzzle on top of
// the puzzle engine. It is driven by the terminal platform through core.Game.
package syllables

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-syllables/internal/config"
	"github.com/vovakirdan/tui-syllables/internal/core"
	"github.com/vovakirdan/tui-syllables/internal/puzzle"
)

// ID is the game identifier used for storage and screenshots.
const ID = "syllables"

// Status messages shown in the HUD.
const (
	msgSelectFirst = "Please select a puzzle first."
	msgNothingUndo = "Nothing to undo."
)

// Solve is a completed puzzle waiting to be persisted by the platform.
type Solve struct {
	Puzzle int
	Name   string
	Moves  int
	Grades int
}

// Game is the interactive puzzle: the engine plus a cursor, a guard against
// playing before a puzzle is chosen and a victory banner.
type Game struct {
	catalog *config.Catalog
	cfg     config.SyllablesConfig
	logger  *log.Logger

	session *puzzle.Session
	moves   *puzzle.MoveLog
	undoer  *puzzle.Undoer
	grader  *puzzle.Grader

	tick    uint64
	screenW int
	screenH int

	cursor       puzzle.Coordinate
	chosen       bool // A puzzle has been selected at least once
	startPuzzle  int  // Applied on the next Reset, 0 for none
	paused       bool
	tooSmall     bool
	quitting     bool
	message      string
	victory      puzzle.Victory
	victoryTicks int // Remaining ticks of the victory banner
	solves       []Solve
}

// New creates a game over a validated catalogue.
func New(cat *config.Catalog, cfg config.SyllablesConfig) *Game {
	return &Game{
		catalog: cat,
		cfg:     cfg,
		logger:  log.Default(),
	}
}

// Load reads the configuration (see config.LoadSyllables) and creates a game.
func Load(configPath string) (*Game, error) {
	cat, cfg, err := config.LoadCatalog(configPath)
	if err != nil {
		return nil, err
	}
	return New(cat, cfg), nil
}

// SetLogger replaces the logger used for victories and catalogue warnings.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// SetStartPuzzle selects a puzzle on the next Reset. 0 starts with none.
func (g *Game) SetStartPuzzle(index int) {
	g.startPuzzle = index
}

// Catalog returns the puzzle catalogue the game plays from.
func (g *Game) Catalog() *config.Catalog {
	return g.catalog
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Syllables"
}

// Reset starts a fresh session sized for the given screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.session = puzzle.NewSession(g.catalog)
	g.session.SetLogger(g.logger)
	if err := g.session.Initialize(g.cfg.Board.Spec()); err != nil {
		// The catalogue validated the board already.
		g.logger.Error("invalid board", "error", err)
	}
	g.moves = puzzle.NewMoveLog(g.session)
	g.undoer = puzzle.NewUndoer(g.moves)
	g.grader = g.session.Grader()
	g.grader.SetNotifier(puzzle.NotifierFunc(g.onVictory))

	g.tick = 0
	g.cursor = puzzle.At(0, 0)
	g.chosen = false
	g.paused = false
	g.quitting = false
	g.message = ""
	g.victoryTicks = 0
	g.solves = nil

	g.Resize(cfg.ScreenW, cfg.ScreenH)

	if g.startPuzzle > 0 {
		g.selectPuzzle(g.startPuzzle)
	}
}

// Resize adapts the layout to a new screen size without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	l := g.layout()
	g.tooSmall = g.screenW < l.minW || g.screenH < l.minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionQuit) {
		g.quitting = true
		return g.result()
	}

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if g.victoryTicks > 0 {
		g.victoryTicks--
		if !in.Empty() {
			// Any input dismisses the banner and is handled as usual.
			g.victoryTicks = 0
		}
	}

	for _, a := range []core.Action{core.ActionPick1, core.ActionPick2, core.ActionPick3} {
		if in.Has(a) {
			g.selectPuzzle(a.PickIndex())
		}
	}

	if in.Has(core.ActionRestart) {
		g.resetPuzzle()
	}
	if in.Has(core.ActionUndo) {
		g.undo()
	}

	g.moveCursor(in)

	if in.Has(core.ActionConfirm) {
		g.click(g.cursor)
	}
	for _, p := range in.Clicks {
		if cell, ok := g.cellAt(p.X, p.Y); ok {
			g.cursor = cell
			g.click(cell)
		}
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Message: g.message}
}

// moveCursor applies directional input, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	p := g.session.Puzzle()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Column--
	case in.Has(core.ActionRight):
		g.cursor.Column++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, p.Rows()-1)
	g.cursor.Column = core.Clamp(g.cursor.Column, 0, p.Columns()-1)
}

// selectPuzzle loads a puzzle into the session and the grader, zeroes the
// counters and grades the fresh board.
func (g *Game) selectPuzzle(index int) {
	g.session.SelectConfig(index)
	g.grader.SelectConfig(index)
	g.session.SetMoves(0)
	g.session.SetGrades(0)
	g.grader.ResetGrades()
	g.moves.ClearSelection()
	g.chosen = true
	g.message = fmt.Sprintf("Puzzle %d: %s", index, g.puzzleName(index))
	g.regrade()
}

// resetPuzzle restores the selected puzzle's starting layout and clears history.
func (g *Game) resetPuzzle() {
	if !g.chosen {
		g.message = msgSelectFirst
		return
	}
	index := g.session.SelectedConfig()
	g.session.SelectConfig(index)
	g.grader.SelectConfig(index)
	g.moves.Reset()
	g.grader.ResetGrades()
	g.message = "Puzzle reset."
	g.regrade()
}

func (g *Game) undo() {
	if !g.chosen {
		g.message = msgSelectFirst
		return
	}
	if !g.undoer.UndoMove() {
		g.message = msgNothingUndo
		return
	}
	g.message = ""
	g.regrade()
}

// click forwards a cell click to the move log and regrades.
func (g *Game) click(cell puzzle.Coordinate) {
	if !g.chosen {
		g.message = msgSelectFirst
		return
	}
	g.message = ""
	g.moves.HandleCellClick(cell.Row, cell.Column)
	g.regrade()
}

func (g *Game) regrade() {
	g.grader.GradePuzzle()
}

// onVictory is the grader's notifier. It runs before the grader resets the game.
func (g *Game) onVictory(v puzzle.Victory) {
	puzzle.LogNotifier{Logger: g.logger}.Victory(v)

	g.victory = v
	g.victoryTicks = g.cfg.Display.VictoryTicks
	g.message = strings.SplitN(v.Message(), "\n", 2)[0]
	g.solves = append(g.solves, Solve{
		Puzzle: v.ConfigIndex,
		Name:   g.puzzleName(v.ConfigIndex),
		Moves:  v.Moves,
		Grades: v.Grades,
	})
}

func (g *Game) puzzleName(index int) string {
	if name := g.catalog.Name(index); name != "" {
		return name
	}
	return "empty"
}

// TakeSolves returns the solves since the last call and forgets them.
func (g *Game) TakeSolves() []Solve {
	out := g.solves
	g.solves = nil
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Paused:   g.paused || g.tooSmall,
		Solved:   g.victoryTicks > 0,
		Quitting: g.quitting,
	}
	if g.session != nil {
		s.Moves = g.session.Moves()
		s.Grades = g.session.Grades()
		if g.chosen {
			s.Puzzle = g.session.SelectedConfig()
		}
	}
	return s
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter: Pick | U: Undo | R: Reset | 1-3: Puzzle | P: Pause | Q: Quit"
}
