package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Game is the contract between the platform and a game.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and rendering.
type Game interface {
	// ID returns the identifier used for screenshots and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game. The RuntimeConfig provides the screen
	// dimensions and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick, applying the frame's actions.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// Resize updates the screen dimensions without touching the game state.
	Resize(w, h int)
}

var _ Game = (*t2048.Game)(nil)

// ScoreRecorder receives the score of the current run. Recording the same
// run again keeps its highest score.
type ScoreRecorder interface {
	RecordScore(score int) error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	recorder   ScoreRecorder
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// recorder and logger may be nil.
func NewModel(game Game, recorder ScoreRecorder, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		recorder:   recorder,
		logger:     logger,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// helpHeight is the number of terminal rows taken by the help view.
func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 1
	for _, column := range m.keys.FullHelp() {
		rows = max(rows, len(column))
	}
	return rows
}

// gameHeight is the screen height left to the game above the help view.
func (m Model) gameHeight() int {
	return max(m.config.ScreenH-m.helpHeight(), 0)
}

// layout sizes the screen and the game to the terminal.
func (m Model) layout() {
	h := m.gameHeight()
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	m.game.Reset(cfg)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		// An unfinished run still counts on the scoreboard.
		m.recordScore(m.game.State().Score)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The run being replaced is recorded before the new one starts.
	if m.inputFrame.Has(core.ActionRestart) {
		m.recordScore(m.game.State().Score)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver {
		if !m.scoreSaved {
			m.recordScore(m.gameState.Score)
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordScore hands a positive score to the recorder. Failures are logged;
// the game continues regardless.
func (m Model) recordScore(score int) {
	if m.recorder == nil || score <= 0 {
		return
	}
	if err := m.recorder.RecordScore(score); err != nil {
		m.logger.Warn("could not record score", "score", score, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, recorder ScoreRecorder, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, recorder, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
