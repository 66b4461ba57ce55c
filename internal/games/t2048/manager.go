// Package t2048 implements the 2048 sliding-tile puzzle: the board, the
// move engine, persistence hooks and the terminal adapter.
package t2048

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Default game parameters.
const (
	DefaultSize            = 4
	DefaultStartTiles      = 2
	DefaultFourProbability = 0.1
	DefaultWinValue        = 2048
)

// Options configures a Manager. Zero fields fall back to defaults, except
// FourProbability which is used as given (0 never spawns a 4).
type Options struct {
	Size            int
	StartTiles      int
	FourProbability float64
	WinValue        int

	Rand     RandSource
	Store    StateStore
	Actuator Actuator
	Logger   *log.Logger
}

// DefaultOptions returns the classic 4×4 game with no collaborators attached.
func DefaultOptions() Options {
	return Options{
		Size:            DefaultSize,
		StartTiles:      DefaultStartTiles,
		FourProbability: DefaultFourProbability,
		WinValue:        DefaultWinValue,
	}
}

// MoveResult summarizes one accepted move.
type MoveResult struct {
	Moved      bool
	ScoreDelta int
	Merges     int
	Won        bool // this move created the win tile
	Over       bool // no moves remain after this move
	Spawned    *Tile
}

// Manager owns one game: the grid, the score and the win/loss flags.
// It is not safe for concurrent use.
type Manager struct {
	size            int // size of fresh games; restored games keep their own
	startTiles      int
	fourProbability float64
	winValue        int

	rng      RandSource
	store    StateStore
	actuator Actuator
	logger   *log.Logger

	grid        *Grid
	score       int
	best        int
	over        bool
	won         bool
	keepPlaying bool
}

// NewManager creates a manager and sets up the first game, restoring the
// persisted one when the store holds a valid save.
func NewManager(opts Options) *Manager {
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	if opts.StartTiles <= 0 {
		opts.StartTiles = DefaultStartTiles
	}
	if opts.WinValue <= 0 {
		opts.WinValue = DefaultWinValue
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Store == nil {
		opts.Store = noStore{}
	}
	if opts.Actuator == nil {
		opts.Actuator = discardActuator{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := &Manager{
		size:            opts.Size,
		startTiles:      opts.StartTiles,
		fourProbability: opts.FourProbability,
		winValue:        opts.WinValue,
		rng:             opts.Rand,
		store:           opts.Store,
		actuator:        opts.Actuator,
		logger:          opts.Logger,
	}
	m.setup()
	return m
}

// Grid returns the live board. Callers must not mutate it.
func (m *Manager) Grid() *Grid { return m.grid }

// Score returns the cumulative score of the current game.
func (m *Manager) Score() int { return m.score }

// BestScore returns the highest score seen by this manager's store.
func (m *Manager) BestScore() int { return m.best }

// Over reports whether the game was lost.
func (m *Manager) Over() bool { return m.over }

// Won reports whether the win tile has been created.
func (m *Manager) Won() bool { return m.won }

// KeepPlayingEnabled reports whether the player chose to continue past a win.
func (m *Manager) KeepPlayingEnabled() bool { return m.keepPlaying }

// WinValue returns the tile value that wins the game.
func (m *Manager) WinValue() int { return m.winValue }

// IsGameTerminated reports whether moves are currently ignored.
func (m *Manager) IsGameTerminated() bool {
	return m.over || (m.won && !m.keepPlaying)
}

// MovesAvailable reports whether some move can still change the board.
func (m *Manager) MovesAvailable() bool {
	return movesAvailable(m.grid)
}

// Restart discards the current game, including its save, and starts a new one.
func (m *Manager) Restart() {
	if err := m.store.ClearGameState(); err != nil {
		m.logger.Warn("could not clear saved game", "error", err)
	}
	m.actuator.ContinueGame()
	m.logger.Info("game restarted", "score", m.score)
	m.readBestScore()
	m.newGame()
}

// KeepPlaying lets the player continue after reaching the win tile.
func (m *Manager) KeepPlaying() {
	m.keepPlaying = true
	m.actuator.ContinueGame()
	m.logger.Debug("keep playing", "score", m.score)
	m.actuate()
}

// Serialize returns the persisted form of the current game.
func (m *Manager) Serialize() GameInfo {
	return GameInfo{
		Grid:        m.grid.Serialize(),
		Score:       m.score,
		Over:        m.over,
		Won:         m.won,
		KeepPlaying: m.keepPlaying,
	}
}

// Move slides every tile in dir, merging equal neighbours once per move.
// Invalid directions and moves on a terminated game are ignored.
func (m *Manager) Move(dir Direction) MoveResult {
	if !dir.Valid() || m.IsGameTerminated() {
		return MoveResult{}
	}

	var res MoveResult
	vector := dir.Vector()
	traversals := buildTraversals(m.grid.Size(), vector)

	m.prepareTiles()

	for _, x := range traversals.X {
		for _, y := range traversals.Y {
			cell := Pos(x, y)
			tile := m.grid.CellContent(cell)
			if tile == nil {
				continue
			}

			farthest, nextPos := findFarthestPosition(m.grid, cell, vector)
			next := m.grid.CellContent(nextPos)

			if next != nil && next.Value == tile.Value && next.MergedFrom == nil {
				merged := m.grid.CreateTile(nextPos, tile.Value*2)
				merged.MergedFrom = &MergeSources{
					Sources: [2]MergeSource{tile.source(), next.source()},
				}

				m.grid.InsertTile(merged)
				m.grid.RemoveTile(tile)
				tile.UpdatePosition(nextPos)

				m.score += merged.Value
				res.ScoreDelta += merged.Value
				res.Merges++

				if merged.Value == m.winValue && !m.won {
					m.won = true
					res.Won = true
				}
			} else {
				m.grid.MoveTile(tile, farthest)
			}

			if tile.Position() != cell {
				res.Moved = true
			}
		}
	}

	if !res.Moved {
		// A full board with no merges left can be reached by restoring a
		// save; the attempted move is what ends it.
		if !m.over && !m.MovesAvailable() {
			m.over = true
			m.logger.Info("game over", "score", m.score)
			m.actuate()
			return MoveResult{Over: true}
		}
		return MoveResult{}
	}

	res.Spawned = m.addRandomTile()

	if !m.MovesAvailable() {
		m.over = true
		res.Over = true
		m.logger.Info("game over", "score", m.score)
	}
	if res.Won {
		m.logger.Info("win tile reached", "value", m.winValue, "score", m.score)
	}

	m.actuate()
	return res
}

// setup restores the saved game or starts a fresh one.
func (m *Manager) setup() {
	m.readBestScore()

	if prev := m.loadState(); prev != nil {
		grid, err := NewGridFromState(prev.Grid)
		if err == nil {
			m.grid = grid
			m.score = prev.Score
			m.over = prev.Over
			m.won = prev.Won
			m.keepPlaying = prev.KeepPlaying
			m.logger.Debug("restored saved game", "size", grid.Size(), "score", m.score)
			m.actuate()
			return
		}
	}

	m.newGame()
}

func (m *Manager) readBestScore() {
	best, err := m.store.BestScore()
	if err != nil {
		m.logger.Warn("could not read best score", "error", err)
	} else if best > m.best {
		m.best = best
	}
}

// newGame starts a fresh board at the configured size, ignoring any save.
func (m *Manager) newGame() {
	m.grid = NewGrid(m.size)
	m.score = 0
	m.over = false
	m.won = false
	m.keepPlaying = false
	m.addStartTiles()
	m.actuate()
}

// loadState returns a valid saved game or nil. Unreadable saves count as
// absent; malformed ones are also cleared so they are not retried.
func (m *Manager) loadState() *GameInfo {
	state, err := m.store.GameState()
	if err != nil {
		m.logger.Warn("could not load saved game", "error", err)
		return nil
	}
	if state == nil {
		return nil
	}
	if err := ValidateGameInfo(*state); err != nil {
		m.logger.Warn("discarding malformed saved game", "error", err)
		if err := m.store.ClearGameState(); err != nil {
			m.logger.Warn("could not clear saved game", "error", err)
		}
		return nil
	}
	return state
}

func (m *Manager) addStartTiles() {
	for range m.startTiles {
		m.addRandomTile()
	}
}

// addRandomTile spawns a 2 or a 4 on a random empty cell. It returns nil
// when the board is full.
func (m *Manager) addRandomTile() *Tile {
	if !m.grid.CellsAvailable() {
		return nil
	}
	value := 2
	if m.rng.Float64() < m.fourProbability {
		value = 4
	}
	pos, ok := m.grid.RandomAvailableCell(m.rng)
	if !ok {
		return nil
	}
	tile := m.grid.CreateTile(pos, value)
	m.grid.InsertTile(tile)
	return tile
}

// prepareTiles records every tile's position and drops last move's merge
// provenance.
func (m *Manager) prepareTiles() {
	for _, t := range m.grid.Tiles() {
		t.MergedFrom = nil
		t.SavePosition()
	}
}

// actuate persists the game and hands a snapshot to the actuator.
func (m *Manager) actuate() {
	if m.score > m.best {
		m.best = m.score
		if err := m.store.SetBestScore(m.score); err != nil {
			m.logger.Warn("could not save best score", "error", err)
		}
	}

	if m.over {
		if err := m.store.ClearGameState(); err != nil {
			m.logger.Warn("could not clear saved game", "error", err)
		}
	} else {
		if err := m.store.SetGameState(m.Serialize()); err != nil {
			m.logger.Warn("could not save game", "error", err)
		}
	}

	m.actuator.Actuate(newView(m.grid, Metadata{
		Score:      m.score,
		BestScore:  m.best,
		Over:       m.over,
		Won:        m.won,
		Terminated: m.IsGameTerminated(),
	}))
}

// noStore is used when the caller does not persist games.
type noStore struct{}

func (noStore) BestScore() (int, error) { return 0, nil }
func (noStore) SetBestScore(int) error { return nil }
func (noStore) GameState() (*GameInfo, error) { return nil, nil }
func (noStore) SetGameState(GameInfo) error { return nil }
func (noStore) ClearGameState() error { return nil }
