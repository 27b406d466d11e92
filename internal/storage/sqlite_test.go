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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("lines")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		if _, err := store.SaveResult(GameResult{GameID: "lines", Score: score}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	store.SaveResult(GameResult{GameID: "lines_mini", Score: 500})

	high, err = store.HighScore("lines")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(GameResult{
		GameID:   "lines",
		Player:   "alice",
		Score:    25,
		Turns:    40,
		Cleared:  25,
		Width:    9,
		Height:   9,
		Seed:     42,
		Duration: 3*time.Minute + 250*time.Millisecond,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id == 0 {
		t.Error("SaveResult should return the row ID")
	}

	results, err := store.RecentResults("lines", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Player != "alice" || r.Turns != 40 || r.Cleared != 25 || r.Seed != 42 {
		t.Errorf("Unexpected result: %+v", r)
	}
	if r.Width != 9 || r.Height != 9 {
		t.Errorf("Board size = %dx%d, expected 9x9", r.Width, r.Height)
	}
	if r.Duration != 3*time.Minute+250*time.Millisecond {
		t.Errorf("Duration = %v", r.Duration)
	}

	// The score also lands in the high score table
	high, err := store.HighScore("lines")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 25 {
		t.Errorf("Expected high score 25, got %d", high)
	}
}

func TestStoreSaveResultWithoutScore(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(GameResult{GameID: "lines", Turns: 12, Width: 9, Height: 9}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	var rows int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM scores").Scan(&rows); err != nil {
		t.Fatalf("counting scores failed: %v", err)
	}
	if rows != 0 {
		t.Errorf("Zero-score games should not enter the high score table, got %d rows", rows)
	}
	results, _ := store.RecentResults("lines", 10)
	if len(results) != 1 {
		t.Errorf("Zero-score games should still be logged, got %d results", len(results))
	}
}

func TestStoreRecentResultsOrder(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveResult(GameResult{GameID: "lines", Score: i, Turns: i}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	store.SaveResult(GameResult{GameID: "lines_mini", Score: 99})

	results, err := store.RecentResults("lines", 3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}
	for i, want := range []int{5, 4, 3} {
		if results[i].Turns != want {
			t.Errorf("results[%d].Turns = %d, expected %d (newest first)", i, results[i].Turns, want)
		}
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("lines")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveResult(GameResult{GameID: "lines", Score: 10, Cleared: 10, Turns: 20})
	store.SaveResult(GameResult{GameID: "lines", Score: 30, Cleared: 30, Turns: 40})
	store.SaveResult(GameResult{GameID: "lines_mini", Score: 8, Cleared: 8, Turns: 9})

	stats, err := store.GetGameStats("lines")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalCleared != 40 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 20 || stats.AvgTurns != 30 {
		t.Errorf("Averages = %v score, %v turns; expected 20 and 30", stats.AvgScore, stats.AvgTurns)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["lines_mini"].GamesCount != 1 {
		t.Errorf("Unexpected per-game stats: %v", all)
	}
}

func TestStoreClearScoresRemovesResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(GameResult{GameID: "lines", Score: 10})
	store.SaveResult(GameResult{GameID: "lines_mini", Score: 5})

	if err := store.ClearScores("lines"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if results, _ := store.RecentResults("lines", 10); len(results) != 0 {
		t.Errorf("Expected no lines results after clear, got %d", len(results))
	}
	if results, _ := store.RecentResults("lines_mini", 10); len(results) != 1 {
		t.Error("Other games should keep their results")
	}
	if high, _ := store.HighScore("lines"); high != 0 {
		t.Errorf("Expected high score cleared, got %d", high)
	}
	if high, _ := store.HighScore("lines_mini"); high != 5 {
		t.Errorf("Other games should keep their high score, got %d", high)
	}
	if all, _ := store.GetAllGamesStats(); all["lines"] != nil || all["lines_mini"] == nil {
		t.Errorf("Per-game stats after clear: %v", all)
	}
}

func TestStoreTopResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(GameResult{GameID: "lines", Score: 10, Turns: 30})
	store.SaveResult(GameResult{GameID: "lines", Score: 40, Turns: 90})
	store.SaveResult(GameResult{GameID: "lines", Score: 10, Turns: 20})
	store.SaveResult(GameResult{GameID: "lines_mini", Score: 99, Turns: 5})

	results, err := store.TopResults("lines", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if results[0].Score != 40 {
		t.Errorf("Expected best score first, got %d", results[0].Score)
	}
	// Equal scores: fewer turns ranks higher
	if results[1].Turns != 20 || results[2].Turns != 30 {
		t.Errorf("Tie order = %d, %d turns; expected 20, 30", results[1].Turns, results[2].Turns)
	}
}
