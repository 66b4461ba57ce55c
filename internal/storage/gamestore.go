package storage

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// GameStore persists one game's state, best score and run scores in a Store.
// Each game from start to loss or restart is a run with its own id; the id
// is kept with the save so a resumed game records into the same score row.
type GameStore struct {
	store  *Store
	gameID string
	runID  string
	ended  bool // the save was cleared; the next save starts a new run
}

// GameStore returns the persistence adapter for gameID.
func (s *Store) GameStore(gameID string) *GameStore {
	return &GameStore{
		store:  s,
		gameID: gameID,
		runID:  uuid.NewString(),
	}
}

var _ t2048.StateStore = (*GameStore)(nil)

// RunID returns the id of the current run.
func (g *GameStore) RunID() string {
	return g.runID
}

// BestScore implements t2048.StateStore.
func (g *GameStore) BestScore() (int, error) {
	return g.store.BestScore(g.gameID)
}

// SetBestScore implements t2048.StateStore. Lower scores are ignored.
func (g *GameStore) SetBestScore(score int) error {
	return g.store.RaiseBestScore(g.gameID, score)
}

// GameState implements t2048.StateStore. A saved game resumes its run.
func (g *GameStore) GameState() (*t2048.GameInfo, error) {
	saved, err := g.store.LoadGame(g.gameID)
	if err != nil || saved == nil {
		return nil, err
	}

	var info t2048.GameInfo
	if err := json.Unmarshal(saved.State, &info); err != nil {
		return nil, fmt.Errorf("storage: cannot decode saved game: %w", err)
	}

	if saved.RunID != "" {
		g.runID = saved.RunID
		g.ended = false
	}
	return &info, nil
}

// SetGameState implements t2048.StateStore.
func (g *GameStore) SetGameState(state t2048.GameInfo) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("storage: cannot encode game: %w", err)
	}
	if g.ended {
		g.runID = uuid.NewString()
		g.ended = false
	}
	return g.store.SaveGame(g.gameID, g.runID, data)
}

// ClearGameState implements t2048.StateStore.
func (g *GameStore) ClearGameState() error {
	g.ended = true
	return g.store.DeleteGame(g.gameID)
}

// RecordScore stores score for the current run. Empty runs are not recorded.
func (g *GameStore) RecordScore(score int) error {
	if score <= 0 {
		return nil
	}
	return g.store.SaveScore(g.gameID, g.runID, score)
}
