package main

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// scoresLimit is the number of runs loaded for the scoreboard.
const scoresLimit = 100

// gameStore is the persistence a game run needs: saved state, best score
// and the run's score row.
type gameStore interface {
	t2048.StateStore
	tui.ScoreRecorder
}

// session holds the persistence for one invocation. When the database
// cannot be opened the game runs against an in-memory store.
type session struct {
	db     *storage.Store
	memory *storage.MemoryStore
	games  gameStore
}

// openSession opens the database. With fallback set, a database error
// switches to memory; otherwise it is returned.
func openSession(fallback bool) (*session, error) {
	db, err := storage.Open(flagDBPath)
	if err != nil {
		if !fallback {
			return nil, err
		}
		logger.Warn("could not open database, progress will not be kept", "path", flagDBPath, "error", err)
		mem := storage.NewMemoryStore()
		return &session{memory: mem, games: mem}, nil
	}
	return &session{db: db, games: db.GameStore(t2048.GameID)}, nil
}

// persistent reports whether progress outlives the process.
func (s *session) persistent() bool {
	return s.db != nil
}

func (s *session) close() {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			logger.Warn("could not close database", "error", err)
		}
	}
}

// hasSave reports whether a game can be continued. A save that cannot be
// read is reported as absent; the engine discards it on load.
func (s *session) hasSave() bool {
	state, err := s.games.GameState()
	if err != nil {
		logger.Warn("could not read saved game", "error", err)
		return false
	}
	return state != nil
}

// bestScore returns the best score, logging read failures.
func (s *session) bestScore() int {
	best, err := s.games.BestScore()
	if err != nil {
		logger.Warn("could not read best score", "error", err)
	}
	return best
}

// scoreboard loads everything the scoreboard shows.
func (s *session) scoreboard() (tui.ScoreboardData, error) {
	data := tui.ScoreboardData{Title: "2048", Best: s.bestScore()}

	if s.db == nil {
		data.Scores = s.memory.TopScores(scoresLimit)
		return data, nil
	}

	scores, err := s.db.TopScores(t2048.GameID, scoresLimit)
	if err != nil {
		return data, fmt.Errorf("cannot load scores: %w", err)
	}
	data.Scores = scores

	stats, err := s.db.GetGameStats(t2048.GameID)
	if err != nil {
		return data, fmt.Errorf("cannot load stats: %w", err)
	}
	data.Stats = stats
	return data, nil
}
