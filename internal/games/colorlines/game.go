// Package colorlines plugs the Lines rule engine into the arcade platform:
// it owns the cursor, drives the animated phases with tick counters and
// draws the board into a core.Screen.
package colorlines

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lines/internal/config"
	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/lines"
	"github.com/vovakirdan/tui-lines/internal/registry"
)

// Variant describes one registered flavour of the game.
type Variant struct {
	ID          string
	Title       string
	Description string
}

var (
	Classic = Variant{
		ID:          config.GameLines,
		Title:       "Color Lines",
		Description: "9x9 board, seven colours, five in a row",
	}
	Mini = Variant{
		ID:          config.GameLinesMini,
		Title:       "Color Lines Mini",
		Description: "7x7 board, five colours, four in a row",
	}
)

func init() {
	registry.Register(Classic.ID, func() registry.Game {
		return New(Classic)
	})
	registry.Register(Mini.ID, func() registry.Game {
		return New(Mini)
	})
}

// Game implements registry.Game on top of a lines.Controller.
type Game struct {
	variant Variant
	logger  *log.Logger

	cfg        config.LinesConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	ctrl       *lines.Controller
	seed       int64

	cursor     lines.Cell
	phaseTicks int // ticks spent in the current animated phase
	tick       uint64
	message    string

	screenW  int
	screenH  int
	tooSmall bool
	paused   bool
	gameOver bool
}

// New creates a game of the given variant. Call Reset before use.
func New(v Variant) *Game {
	return &Game{
		variant: v,
		logger:  log.New(io.Discard),
	}
}

// SetLogger routes debug output of the game to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l.WithPrefix(g.variant.ID)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return g.variant.Description
}

// Reset loads the configuration and starts a new game seeded from rc.Seed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = g.loadConfig(rc)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.seed = rc.Seed
	g.rng = lines.NewRand(rc.Seed)

	g.ctrl, g.cfg = g.newController(g.cfg)

	opening := lines.RandomBalls(g.rng, lines.Palette(g.cfg.Rules.Colors), g.cfg.Rules.InitialBalls)
	if _, err := g.ctrl.Seed(opening); err != nil {
		g.logger.Error("seeding failed", "error", err)
	}

	g.cursor = lines.C(g.cfg.Board.Width/2, g.cfg.Board.Height/2)
	g.phaseTicks = 0
	g.tick = 0
	g.message = ""
	g.paused = false
	g.gameOver = g.ctrl.State().Terminal()

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.checkScreenSize()

	g.logger.Debug("game reset",
		"seed", rc.Seed,
		"board", g.cfg.Board,
		"colors", g.cfg.Rules.Colors,
		"min_run", g.ctrl.MinRun(),
	)
}

// newController builds the engine for cfg. A board that cannot be built
// falls back to the variant defaults.
func (g *Game) newController(cfg config.LinesConfig) (*lines.Controller, config.LinesConfig) {
	board, err := lines.NewBoard(cfg.Board.Width, cfg.Board.Height)
	if err != nil {
		g.logger.Error("using default board", "error", err)
		cfg = config.DefaultFor(g.variant.ID)
		board, _ = lines.NewBoard(cfg.Board.Width, cfg.Board.Height)
	}
	return lines.NewController(board, g.rng, lines.Options{MinRun: cfg.Rules.MinRun}), cfg
}

// loadConfig resolves the variant configuration, falling back to the
// hardcoded defaults when a file or preset is unusable.
func (g *Game) loadConfig(rc core.RuntimeConfig) config.LinesConfig {
	cfg, err := config.LoadLines(g.variant.ID, rc.ConfigPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
	}

	preset, err := config.ParsePreset(rc.Preset)
	if err != nil {
		g.logger.Warn("ignoring difficulty preset", "error", err)
	}
	config.ApplyLinesPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		g.logger.Warn("using default config", "error", err)
		return config.DefaultFor(g.variant.ID)
	}
	return cfg
}

// checkScreenSize checks if the screen can hold the board and the HUD.
func (g *Game) checkScreenSize() {
	w, h := g.layoutSize()
	screen := core.NewRect(0, 0, g.screenW, g.screenH)
	g.tooSmall = !screen.Contains(w-1, h-1)
}

// Resize adapts the game to a new screen size without restarting it.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if !in.Empty() {
		g.message = ""
	}
	g.moveCursor(in)
	if in.Has(core.ActionConfirm) {
		g.confirm()
	}
	g.advance()

	return core.StepResult{State: g.State()}
}

// moveCursor moves the cursor one cell, wrapping at the board edges.
func (g *Game) moveCursor(in core.InputFrame) {
	dx, dy := 0, 0
	switch {
	case in.Has(core.ActionUp):
		dy = -1
	case in.Has(core.ActionDown):
		dy = 1
	case in.Has(core.ActionLeft):
		dx = -1
	case in.Has(core.ActionRight):
		dx = 1
	default:
		return
	}
	g.cursor = lines.C(
		core.Wrap(g.cursor.X+dx, g.ctrl.Width()),
		core.Wrap(g.cursor.Y+dy, g.ctrl.Height()),
	)
}

// confirm acts on the cell under the cursor: select a ball, re-select
// another one, or send the selected ball to an empty cell.
func (g *Game) confirm() {
	x, y := g.cursor.X, g.cursor.Y

	switch g.ctrl.State() {
	case lines.WaitingForSelection:
		g.report("select", g.selectAt(x, y))
	case lines.BallSelected:
		if g.ctrl.CanMoveTo(x, y) {
			err := g.ctrl.StartMove(x, y)
			if err == nil {
				g.phaseTicks = 0
			}
			g.report("move", err)
			return
		}
		g.report("select", g.selectAt(x, y))
	default:
		// A turn is being animated; input waits for the next one
	}
}

func (g *Game) selectAt(x, y int) error {
	_, err := g.ctrl.SelectBall(x, y)
	return err
}

// report turns engine errors into a status message. Soft rejections are
// expected during play and only logged.
func (g *Game) report(op string, err error) {
	switch {
	case err == nil:
	case lines.IsSoft(err):
		g.logger.Debug("command rejected", "op", op, "error", err)
	case errors.Is(err, lines.ErrInvalidSelection):
		g.message = "No ball there"
	default:
		g.logger.Warn("command failed", "op", op, "error", err)
		g.message = err.Error()
	}
}

// advance runs the engine through the animated phases. A phase completes
// once it has lasted its configured number of ticks, so zero-length phases
// complete within the same Step.
func (g *Game) advance() {
	for {
		var duration int
		switch g.ctrl.State() {
		case lines.BallMoving:
			duration = g.cfg.Animation.MoveTicks
		case lines.ClearLines:
			duration = g.cfg.Animation.ClearTicks
		case lines.ShootNewBalls:
			duration = g.cfg.Animation.SpawnTicks
		default:
			return
		}

		if g.phaseTicks < duration {
			g.phaseTicks++
			return
		}
		g.phaseTicks = 0
		g.finishPhase()
		if g.gameOver {
			return
		}
	}
}

// finishPhase issues the command that ends the current animated phase.
func (g *Game) finishPhase() {
	switch g.ctrl.State() {
	case lines.BallMoving:
		_, dest, _ := g.ctrl.Moving()
		if err := g.ctrl.EndMove(); err != nil {
			g.logger.Error("end move", "error", err)
			return
		}
		if matched := lines.Unique(g.ctrl.BallsToClear()); len(matched) > 0 {
			g.logger.Debug("line formed",
				"turn", g.ctrl.Turn(),
				"balls", len(matched),
				"axes", g.runAxes(dest),
			)
		}

	case lines.ClearLines:
		err := g.ctrl.ClearAndSpawn(g.nextBalls())
		if err != nil {
			// Unreachable through moves, which always free their source cell
			g.logger.Warn("no room to spawn", "error", err)
			g.endGame()
		}

	case lines.ShootNewBalls:
		if err := g.ctrl.ApplyNewBallsAndAdvance(); err != nil {
			g.logger.Error("apply new balls", "error", err)
			return
		}
		if g.ctrl.State().Terminal() {
			g.endGame()
		}
	}
}

// runAxes names the axes through at that hold a qualifying run.
func (g *Game) runAxes(at lines.Cell) []string {
	board := g.ctrl.Board()
	var names []string
	for _, axis := range lines.Axes {
		if run, ok := lines.RunAt(board, at, axis); ok && run.Len() >= g.ctrl.MinRun() {
			names = append(names, axis.Name)
		}
	}
	return names
}

// nextBalls draws the balls for the coming spawn. A move that cleared a line
// earns a free turn, so nothing is spawned after it.
func (g *Game) nextBalls() []lines.Ball {
	if len(g.ctrl.BallsToClear()) > 0 {
		return nil
	}
	score, turn := g.ctrl.Cleared(), g.ctrl.Turn()
	colors := g.difficulty.Colors(g.cfg.Rules.Colors, score, turn)
	n := g.difficulty.BallsPerTurn(g.cfg.Rules.BallsPerTurn, score, turn)
	return lines.RandomBalls(g.rng, lines.Palette(colors), n)
}

func (g *Game) endGame() {
	g.gameOver = true
	g.logger.Info("game over",
		"turns", g.ctrl.Turn(),
		"cleared", g.ctrl.Cleared(),
		"balls", g.ctrl.Board().Count(),
		"seed", g.seed,
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.ctrl.Cleared(),
		Turn:     g.ctrl.Turn(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// BoardSize returns the board dimensions of the running game.
func (g *Game) BoardSize() (width, height int) {
	return g.cfg.Board.Width, g.cfg.Board.Height
}
