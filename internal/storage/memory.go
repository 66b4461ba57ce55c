package storage

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// MemoryStore keeps one game's state in memory. It is used when the
// database cannot be opened, so play still works for the session.
type MemoryStore struct {
	mu     sync.Mutex
	best   int
	state  []byte
	runID  string
	ended  bool
	scores map[string]ScoreEntry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runID:  uuid.NewString(),
		scores: make(map[string]ScoreEntry),
	}
}

var _ t2048.StateStore = (*MemoryStore)(nil)

// BestScore implements t2048.StateStore.
func (m *MemoryStore) BestScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// SetBestScore implements t2048.StateStore. Lower scores are ignored.
func (m *MemoryStore) SetBestScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = max(m.best, score)
	return nil
}

// GameState implements t2048.StateStore. The state is stored encoded so
// callers never share slices with the store.
func (m *MemoryStore) GameState() (*t2048.GameInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, nil
	}
	var info t2048.GameInfo
	if err := json.Unmarshal(m.state, &info); err != nil {
		return nil, fmt.Errorf("storage: cannot decode saved game: %w", err)
	}
	return &info, nil
}

// SetGameState implements t2048.StateStore.
func (m *MemoryStore) SetGameState(state t2048.GameInfo) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("storage: cannot encode game: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ended {
		m.runID = uuid.NewString()
		m.ended = false
	}
	m.state = data
	return nil
}

// ClearGameState implements t2048.StateStore.
func (m *MemoryStore) ClearGameState() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = nil
	m.ended = true
	return nil
}

// RecordScore stores score for the current run. Empty runs are not recorded.
func (m *MemoryStore) RecordScore(score int) error {
	if score <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.scores[m.runID]
	if !ok {
		e = ScoreEntry{
			ID:     int64(len(m.scores) + 1),
			GameID: t2048.GameID,
			RunID:  m.runID,
		}
	}
	if score > e.Score {
		e.Score = score
		e.CreatedAt = time.Now()
		m.scores[m.runID] = e
	}
	return nil
}

// TopScores returns the recorded runs, highest first.
func (m *MemoryStore) TopScores(limit int) []ScoreEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]ScoreEntry, 0, len(m.scores))
	for _, e := range m.scores {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b ScoreEntry) int {
		return cmp.Or(cmp.Compare(b.Score, a.Score), cmp.Compare(a.ID, b.ID))
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
