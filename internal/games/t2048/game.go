package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// GameID is the identifier used for score storage and screenshots.
const GameID = "2048"

// scoreAdditionTicks is how long the "+N" marker stays visible (~0.75s at 60fps).
const scoreAdditionTicks = 45

// messageKind is the overlay shown over a terminated game.
type messageKind int

const (
	messageNone messageKind = iota
	messageWon
	messageOver
)

// Game adapts a Manager to the terminal platform. It is the Manager's
// Actuator: every committed state arrives as a View and is animated from
// the tiles' previous positions and merge sources.
type Game struct {
	opts Options
	mgr  *Manager
	tick uint64

	view    View
	hasView bool
	message messageKind

	scoreAddition int
	additionTicks int

	anim animation

	screenW  int
	screenH  int
	tooSmall bool
}

// NewGame creates a game that builds its Manager from opts on Reset.
// opts.Rand and opts.Actuator are replaced on every Reset.
func NewGame(opts Options) *Game {
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset builds a new Manager, restoring the saved game when there is one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.view = View{}
	g.hasView = false
	g.message = messageNone
	g.scoreAddition = 0
	g.additionTicks = 0
	g.anim = animation{}

	opts := g.opts
	opts.Rand = rand.New(rand.NewSource(cfg.Seed))
	opts.Actuator = g
	g.mgr = NewManager(opts)

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Manager returns the engine driving this game.
func (g *Game) Manager() *Manager {
	return g.mgr
}

// Resize updates the screen dimensions used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	size := g.view.Size
	if size == 0 {
		size = DefaultSize
	}
	minW := boardWidth(size) + 2
	minH := boardHeight(size) + hudHeight + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Actuate receives each committed state from the Manager.
func (g *Game) Actuate(view View) {
	if g.hasView && view.Score > g.view.Score {
		g.scoreAddition = view.Score - g.view.Score
		g.additionTicks = scoreAdditionTicks
	}

	g.anim.start(view)
	g.view = view
	g.hasView = true

	switch {
	case view.Won && view.Terminated:
		g.message = messageWon
	case view.Over:
		g.message = messageOver
	}

	g.checkScreenSize()
}

// ContinueGame clears the win or game-over overlay.
func (g *Game) ContinueGame() {
	g.message = messageNone
}

// Step advances animations by one tick and applies the frame's input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.anim.update()
	if g.additionTicks > 0 {
		g.additionTicks--
	}

	if g.tooSmall || g.mgr == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.anim.finish()
		g.mgr.Restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionContinue) && g.mgr.Won() && !g.mgr.KeepPlayingEnabled() {
		g.mgr.KeepPlaying()
		// The board did not change; do not replay the winning move.
		g.anim.finish()
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFromInput(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	// A new move lands every tile of the previous one immediately.
	g.anim.finish()
	res := g.mgr.Move(dir)

	return core.StepResult{State: g.State(), Moved: res.Moved}
}

// directionFromInput returns the first directional action in the frame.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.mgr == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:      g.mgr.Score(),
		GameOver:   g.mgr.Over(),
		Won:        g.mgr.Won(),
		Terminated: g.mgr.IsGameTerminated(),
	}
}

// Animating reports whether a slide or pop is in progress.
func (g *Game) Animating() bool {
	return g.anim.active()
}
