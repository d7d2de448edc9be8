package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.LoadBestScore()
	if err != nil {
		t.Fatalf("LoadBestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 on empty store, got %d", best)
	}

	if err := store.SaveBestScore(1200); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	if err := store.SaveBestScore(3400); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}

	best, err = store.LoadBestScore()
	if err != nil {
		t.Fatalf("LoadBestScore() failed: %v", err)
	}
	if best != 3400 {
		t.Errorf("Expected 3400, got %d", best)
	}
}

func TestStoreStatsRoundTrip(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats() failed: %v", err)
	}
	if empty.GamesPlayed != 0 || empty.FastestWin != nil {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	fastest := 95.5
	want := t2048.GameStats{
		GamesPlayed:  4,
		GamesWon:     1,
		TotalScore:   9000,
		HighestTile:  2048,
		TotalMoves:   800,
		TotalMerges:  350,
		LongestCombo: 7,
		FastestWin:   &fastest,
	}
	if err := store.SaveStats(want); err != nil {
		t.Fatalf("SaveStats() failed: %v", err)
	}

	got, err := store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats() failed: %v", err)
	}
	if got.GamesPlayed != 4 || got.GamesWon != 1 || got.TotalScore != 9000 {
		t.Errorf("Unexpected counters: %+v", got)
	}
	if got.HighestTile != 2048 || got.TotalMoves != 800 || got.TotalMerges != 350 || got.LongestCombo != 7 {
		t.Errorf("Unexpected aggregates: %+v", got)
	}
	if got.FastestWin == nil || *got.FastestWin != 95.5 {
		t.Errorf("Expected fastest win 95.5, got %v", got.FastestWin)
	}

	// Overwrite clears the fastest win
	want.FastestWin = nil
	if err := store.SaveStats(want); err != nil {
		t.Fatalf("SaveStats() failed: %v", err)
	}
	got, _ = store.LoadStats()
	if got.FastestWin != nil {
		t.Errorf("Expected nil fastest win, got %v", *got.FastestWin)
	}
}

func TestStoreRecordAndTopScores(t *testing.T) {
	store := openTestStore(t)

	records := []t2048.ScoreRecord{
		{SessionID: "a", Mode: t2048.ModeClassic, Score: 100, HighestTile: 64, Moves: 40},
		{SessionID: "b", Mode: t2048.ModeClassic, Score: 500, HighestTile: 256, Moves: 120, Won: false},
		{SessionID: "c", Mode: t2048.ModeClassic, Score: 250, HighestTile: 128, Moves: 80},
		{SessionID: "d", Mode: t2048.ModeZen, Score: 900, HighestTile: 512, Moves: 300, Duration: 90 * time.Second},
	}
	for _, rec := range records {
		if err := store.RecordScore(rec); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	wantOrder := []int{500, 250, 100}
	for i, score := range wantOrder {
		if scores[i].Score != score {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, score)
		}
	}

	all, err := store.TopScores("", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 scores with limit, got %d", len(all))
	}
	if all[0].SessionID != "d" || all[0].Mode != "zen" {
		t.Errorf("Expected zen session first, got %+v", all[0])
	}
	if all[0].Duration != 90*time.Second {
		t.Errorf("Expected duration 90s, got %v", all[0].Duration)
	}
}

func TestStoreRecordScoreIsIdempotent(t *testing.T) {
	store := openTestStore(t)

	rec := t2048.ScoreRecord{SessionID: "same", Mode: t2048.ModeClassic, Score: 300}
	for range 3 {
		if err := store.RecordScore(rec); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("Expected 1 row for repeated session, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	store.RecordScore(t2048.ScoreRecord{SessionID: "1", Mode: t2048.ModeClassic, Score: 100})
	store.RecordScore(t2048.ScoreRecord{SessionID: "2", Mode: t2048.ModeClassic, Score: 300})
	store.RecordScore(t2048.ScoreRecord{SessionID: "3", Mode: t2048.ModeTimeAttack, Score: 700})

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected classic high score 300, got %d", high)
	}

	high, _ = store.HighScore("")
	if high != 700 {
		t.Errorf("Expected overall high score 700, got %d", high)
	}
}

func TestStoreReset(t *testing.T) {
	store := openTestStore(t)

	store.SaveBestScore(500)
	store.SaveStats(t2048.GameStats{GamesPlayed: 2})
	store.RecordScore(t2048.ScoreRecord{SessionID: "x", Mode: t2048.ModeZen, Score: 500})

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	best, _ := store.LoadBestScore()
	stats, _ := store.LoadStats()
	scores, _ := store.TopScores("", 10)
	if best != 0 || stats.GamesPlayed != 0 || len(scores) != 0 {
		t.Errorf("Expected empty store after reset, got best=%d stats=%+v scores=%d", best, stats, len(scores))
	}
}

func TestStorePersistence(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	// Create and save
	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.SaveBestScore(4096)
	store1.Close()

	// Reopen and verify
	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	best, err := store2.LoadBestScore()
	if err != nil {
		t.Fatalf("LoadBestScore() failed: %v", err)
	}
	if best != 4096 {
		t.Errorf("Expected persisted best score 4096, got %d", best)
	}
}
