package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// MenuChoice is an entry of the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceContinue
	ChoiceNewGame
	ChoiceScores
	ChoiceQuit
)

// String returns the label shown in the menu.
func (c MenuChoice) String() string {
	switch c {
	case ChoiceContinue:
		return "Continue"
	case ChoiceNewGame:
		return "New game"
	case ChoiceScores:
		return "High scores"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items    []MenuChoice
	cursor   int
	best     int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	selected MenuChoice
}

// NewMenuModel creates a new menu model. Continue is offered only when a
// saved game exists.
func NewMenuModel(hasSave bool, best int, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuChoice, 0, 4)
	if hasSave {
		items = append(items, ChoiceContinue)
	}
	items = append(items, ChoiceNewGame, ChoiceScores, ChoiceQuit)

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:  items,
		best:   best,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.selected = ChoiceQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		m.selected = m.items[m.cursor]
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scores):
		m.selected = ChoiceScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected != ChoiceNone {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.String(), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone while still choosing.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the start menu and returns the selection result.
func RunMenu(hasSave bool, best int, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(hasSave, best, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{Choice: m.Selected(), Config: m.Config()}, nil
}
