package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"w", runeKey('w'), core.ActionUp},
		{"d", runeKey('d'), core.ActionRight},
		{"s", runeKey('s'), core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"vim k", runeKey('k'), core.ActionUp},
		{"vim l", runeKey('l'), core.ActionRight},
		{"vim j", runeKey('j'), core.ActionDown},
		{"vim h", runeKey('h'), core.ActionLeft},
		{"restart", runeKey('r'), core.ActionRestart},
		{"continue", runeKey('c'), core.ActionContinue},
		{"continue enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionContinue},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help", runeKey('?'), core.ActionNone},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultGameKeyMap()
	frame := core.NewInputFrame()

	if quit := keys.MapKeyToFrame(runeKey('a'), &frame); quit {
		t.Error("MapKeyToFrame(a) reported quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame should have ActionLeft")
	}

	if quit := keys.MapKeyToFrame(runeKey('x'), &frame); quit {
		t.Error("MapKeyToFrame(x) reported quit")
	}
	if len(frame.Actions) != 1 {
		t.Errorf("unbound key changed the frame: %v", frame.Actions)
	}

	if quit := keys.MapKeyToFrame(runeKey('q'), &frame); !quit {
		t.Error("MapKeyToFrame(q) should report quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be stored in the frame")
	}
}
