package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// fakeGame scores 4 points per move and ends after overAfter moves.
type fakeGame struct {
	state     core.GameState
	moves     int
	overAfter int
	resets    int
	restarts  int
	w, h      int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
	g.moves = 0
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restarts++
		g.state = core.GameState{}
		g.moves = 0
		return core.StepResult{State: g.state}
	}
	if g.state.GameOver || in.Empty() {
		return core.StepResult{State: g.state}
	}
	g.moves++
	g.state.Score += 4
	if g.overAfter > 0 && g.moves >= g.overAfter {
		g.state.GameOver = true
		g.state.Terminated = true
	}
	return core.StepResult{State: g.state, Moved: true}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.Clear() }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Resize(w, h int) { g.w, g.h = w, h }

type fakeRecorder struct {
	scores []int
	err    error
}

func (r *fakeRecorder) RecordScore(score int) error {
	r.scores = append(r.scores, score)
	return r.err
}

func newTestModel(t *testing.T, game *fakeGame, rec *fakeRecorder) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60, Seed: 1}
	var recorder ScoreRecorder
	if rec != nil {
		recorder = rec
	}
	m := NewModel(game, recorder, cfg, nil)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the tick loop")
	}
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func TestModelReservesHelpLine(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil)

	if game.h != 19 || game.w != 60 {
		t.Errorf("game size = %dx%d, want 60x19", game.w, game.h)
	}

	m = press(t, m, runeKey('?'))
	if game.h >= 19 {
		t.Errorf("full help should take more rows, game height = %d", game.h)
	}
	if m.screen.Height() != game.h {
		t.Errorf("screen height = %d, want %d", m.screen.Height(), game.h)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	m = press(t, m, runeKey('?'))
	if game.w != 100 || game.h != 39 {
		t.Errorf("game size after resize = %dx%d, want 100x39", game.w, game.h)
	}
	if game.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", game.resets)
	}
}

func TestModelRecordsGameOverOnce(t *testing.T) {
	game := &fakeGame{overAfter: 2}
	rec := &fakeRecorder{}
	m := newTestModel(t, game, rec)

	for range 2 {
		m = press(t, m, runeKey('a'))
		m = tick(t, m)
	}
	// Further ticks while over do not record again.
	m = press(t, m, runeKey('a'))
	m = tick(t, m)
	m = tick(t, m)

	if len(rec.scores) != 1 || rec.scores[0] != 8 {
		t.Errorf("recorded %v, want [8]", rec.scores)
	}

	// Restarting after game over records the finished run again (idempotent).
	m = press(t, m, runeKey('r'))
	m = tick(t, m)
	if game.restarts != 1 {
		t.Fatalf("restarts = %d, want 1", game.restarts)
	}
	if m.scoreSaved {
		t.Error("a new game should reset the saved flag")
	}
}

func TestModelRecordsBeforeRestart(t *testing.T) {
	game := &fakeGame{}
	rec := &fakeRecorder{}
	m := newTestModel(t, game, rec)

	// A fresh game has nothing to record.
	m = press(t, m, runeKey('r'))
	m = tick(t, m)
	if len(rec.scores) != 0 {
		t.Fatalf("recorded %v for an empty run", rec.scores)
	}

	m = press(t, m, runeKey('d'))
	m = tick(t, m)
	m = press(t, m, runeKey('r'))
	m = tick(t, m)

	if len(rec.scores) != 1 || rec.scores[0] != 4 {
		t.Errorf("recorded %v, want [4]", rec.scores)
	}
	if game.State().Score != 0 {
		t.Errorf("Score() after restart = %d, want 0", game.State().Score)
	}
}

func TestModelQuitRecordsRunningScore(t *testing.T) {
	game := &fakeGame{}
	rec := &fakeRecorder{err: errors.New("disk full")}
	m := newTestModel(t, game, rec)

	m = press(t, m, runeKey('w'))
	m = tick(t, m)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
	// The failing recorder is logged, not fatal.
	if len(rec.scores) != 1 || rec.scores[0] != 4 {
		t.Errorf("recorded %v, want [4]", rec.scores)
	}
}

func TestModelWithoutRecorder(t *testing.T) {
	game := &fakeGame{overAfter: 1}
	m := newTestModel(t, game, nil)

	m = press(t, m, runeKey('s'))
	m = tick(t, m)
	if !m.gameState.GameOver {
		t.Error("game should be over")
	}
	if view := m.View(); view == "" {
		t.Error("View() should render the game")
	}
}
