package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func menuPress(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuItems(t *testing.T) {
	cfg := core.DefaultConfig()

	tests := []struct {
		name    string
		hasSave bool
		want    []MenuChoice
	}{
		{"with save", true, []MenuChoice{ChoiceContinue, ChoiceNewGame, ChoiceScores, ChoiceQuit}},
		{"without save", false, []MenuChoice{ChoiceNewGame, ChoiceScores, ChoiceQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(tt.hasSave, 0, cfg)
			if len(m.items) != len(tt.want) {
				t.Fatalf("items = %v, want %v", m.items, tt.want)
			}
			for i := range tt.want {
				if m.items[i] != tt.want[i] {
					t.Errorf("items[%d] = %v, want %v", i, m.items[i], tt.want[i])
				}
			}
		})
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(true, 2048, core.DefaultConfig())

	if view := m.View(); !strings.Contains(view, "Continue") || !strings.Contains(view, "Best: 2048") {
		t.Errorf("View() missing entries:\n%s", view)
	}

	// Cursor does not move above the first entry.
	m = menuPress(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	m = menuPress(m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuPress(m, runeKey('j'))
	m = menuPress(m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuPress(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 3 {
		t.Errorf("cursor = %d, want 3", m.cursor)
	}

	m = menuPress(m, runeKey('k'))
	m = menuPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != ChoiceScores {
		t.Errorf("Selected() = %v, want %v", m.Selected(), ChoiceScores)
	}
	if m.View() != "" {
		t.Error("View() after selection should be empty")
	}
}

func TestMenuShortcuts(t *testing.T) {
	cfg := core.DefaultConfig()

	if got := menuPress(NewMenuModel(false, 0, cfg), runeKey('q')).Selected(); got != ChoiceQuit {
		t.Errorf("q selected %v, want %v", got, ChoiceQuit)
	}
	if got := menuPress(NewMenuModel(false, 0, cfg), tea.KeyMsg{Type: tea.KeyTab}).Selected(); got != ChoiceScores {
		t.Errorf("tab selected %v, want %v", got, ChoiceScores)
	}
	if got := menuPress(NewMenuModel(false, 0, cfg), tea.KeyMsg{Type: tea.KeyEnter}).Selected(); got != ChoiceNewGame {
		t.Errorf("enter selected %v, want %v", got, ChoiceNewGame)
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(false, 0, core.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	cfg := next.(MenuModel).Config()

	if cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("Config() = %dx%d, want 120x50", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"abcdef", 4, "abcdef"},
	}

	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestScoreboard(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	data := ScoreboardData{
		Title: "2048",
		Scores: []storage.ScoreEntry{
			{ID: 2, Score: 512, CreatedAt: now},
			{ID: 1, Score: 128, CreatedAt: now},
		},
		Best:  600,
		Stats: &storage.GameStats{GamesCount: 2, AvgScore: 320, LastPlayed: now},
	}

	m := NewScoreboardModel(data, 80, 24)
	if rows := m.table.Rows(); len(rows) != 2 || rows[0][1] != "512" || len(rows[0]) != 3 {
		t.Errorf("table rows = %v", rows)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - 2048", "Best: 600", "Games: 2", "Avg: 320"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	// Narrow terminals drop the date column.
	narrow := NewScoreboardModel(data, 30, 24)
	if rows := narrow.table.Rows(); len(rows[0]) != 2 {
		t.Errorf("narrow row = %v, want rank and score only", rows[0])
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(ScoreboardData{Title: "2048"}, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty scoreboard should say so")
	}
}
