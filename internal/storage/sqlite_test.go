package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenTwiceKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveScore("2048", "run-1", 64); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("2048"); high != 64 {
		t.Errorf("HighScore() after reopen = %d, want 64", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		game, run string
		score     int
	}{
		{"2048", "a", 100},
		{"2048", "b", 50},
		{"2048", "c", 200},
		{"other", "d", 500},
	} {
		if err := store.SaveScore(s.game, s.run, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].RunID != "c" || scores[0].GameID != "2048" {
		t.Errorf("top entry = %+v, want run c of 2048", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	limited, err := store.TopScores("2048", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("TopScores(limit 2) returned %d entries", len(limited))
	}
}

func TestSaveScoreKeepsOneRowPerRun(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{40, 120, 80} {
		if err := store.SaveScore("2048", "run", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 120 {
		t.Errorf("TopScores() = %+v, want a single row with 120", scores)
	}
}

func TestSaveScoreDateFollowsHighestScore(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveScore("2048", "run", 100); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	old := "2020-01-02 03:04:05"
	if _, err := store.db.Exec(`UPDATE scores SET created_at = ?`, old); err != nil {
		t.Fatalf("backdating score: %v", err)
	}
	oldTime, _ := time.Parse(sqliteTime, old)

	createdAt := func() time.Time {
		t.Helper()
		scores, err := store.TopScores("2048", 10)
		if err != nil || len(scores) != 1 {
			t.Fatalf("TopScores() = %+v, %v", scores, err)
		}
		return scores[0].CreatedAt
	}

	// Recording the same or a lower score leaves the row untouched.
	for _, score := range []int{100, 60} {
		if err := store.SaveScore("2048", "run", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		if got := createdAt(); !got.Equal(oldTime) {
			t.Errorf("after SaveScore(%d) CreatedAt = %v, want %v", score, got, oldTime)
		}
	}

	if err := store.SaveScore("2048", "run", 150); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if got := createdAt(); !got.After(oldTime) {
		t.Errorf("after a higher score CreatedAt = %v, want later than %v", got, oldTime)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty game, got %d", high)
	}

	store.SaveScore("2048", "a", 100)
	store.SaveScore("2048", "b", 300)
	store.SaveScore("2048", "c", 200)

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", "a", 100)
	store.SaveScore("other", "b", 200)
	store.RaiseBestScore("2048", 100)

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("2048", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}

	if best, _ := store.BestScore("2048"); best != 100 {
		t.Errorf("BestScore() after ClearScores = %d, want 100", best)
	}
}

func TestSavedGameLifecycle(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.LoadGame("2048")
	if err != nil || saved != nil {
		t.Fatalf("LoadGame() on empty db = %v, %v, want nil, nil", saved, err)
	}

	if err := store.SaveGame("2048", "run-1", []byte(`{"score":4}`)); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if err := store.SaveGame("2048", "run-2", []byte(`{"score":8}`)); err != nil {
		t.Fatalf("SaveGame() overwrite failed: %v", err)
	}

	saved, err = store.LoadGame("2048")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if saved == nil || saved.RunID != "run-2" || string(saved.State) != `{"score":8}` {
		t.Errorf("LoadGame() = %+v, want the latest save", saved)
	}

	if err := store.DeleteGame("2048"); err != nil {
		t.Fatalf("DeleteGame() failed: %v", err)
	}
	if saved, _ := store.LoadGame("2048"); saved != nil {
		t.Error("LoadGame() after delete should return nil")
	}
	if err := store.DeleteGame("2048"); err != nil {
		t.Errorf("DeleteGame() on missing save = %v, want nil", err)
	}
}

func TestBestScoreOnlyIncreases(t *testing.T) {
	store := openTestStore(t)

	if best, err := store.BestScore("2048"); err != nil || best != 0 {
		t.Fatalf("BestScore() on empty db = %d, %v", best, err)
	}

	for _, step := range []struct{ raise, want int }{
		{100, 100},
		{50, 100},
		{250, 250},
		{0, 250},
	} {
		if err := store.RaiseBestScore("2048", step.raise); err != nil {
			t.Fatalf("RaiseBestScore(%d) failed: %v", step.raise, err)
		}
		if best, _ := store.BestScore("2048"); best != step.want {
			t.Errorf("BestScore() after raising %d = %d, want %d", step.raise, best, step.want)
		}
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("2048", "a", 100)
	store.SaveScore("2048", "b", 300)

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.AvgScore != 200 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
