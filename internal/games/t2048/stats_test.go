package t2048

import (
	"testing"
	"time"
)

func TestAggregateStats(t *testing.T) {
	var ids IDGenerator
	st := GameState{
		Grid:      GridFromValues([][]int{{2048, 4}, {8, 0}}, &ids),
		Score:     20000,
		MoveCount: 900,
		PeakCombo: 6,
		Won:       true,
	}

	stats := AggregateStats(GameStats{}, st, 2, 90*time.Second)
	if stats.GamesPlayed != 1 || stats.GamesWon != 1 {
		t.Errorf("played/won = %d/%d, want 1/1", stats.GamesPlayed, stats.GamesWon)
	}
	if stats.TotalScore != 20000 || stats.TotalMoves != 900 || stats.TotalMerges != 2 {
		t.Errorf("totals = %+v", stats)
	}
	if stats.HighestTile != 2048 || stats.LongestCombo != 6 {
		t.Errorf("highest/combo = %d/%d", stats.HighestTile, stats.LongestCombo)
	}
	if stats.FastestWin == nil || *stats.FastestWin != 90 {
		t.Fatalf("fastest win = %v, want 90", stats.FastestWin)
	}

	// A slower win keeps the fastest, a loss keeps the maxima
	st.PeakCombo = 2
	slower := AggregateStats(stats, st, 0, 200*time.Second)
	if *slower.FastestWin != 90 || slower.LongestCombo != 6 {
		t.Errorf("slower win: fastest %v combo %d", *slower.FastestWin, slower.LongestCombo)
	}

	st.Won = false
	lost := AggregateStats(slower, st, 0, 10*time.Second)
	if lost.GamesPlayed != 3 || lost.GamesWon != 2 {
		t.Errorf("played/won = %d/%d, want 3/2", lost.GamesPlayed, lost.GamesWon)
	}
	if *lost.FastestWin != 90 {
		t.Errorf("a loss must not touch the fastest win, got %v", *lost.FastestWin)
	}

	// Inputs are never mutated
	if stats.GamesPlayed != 1 || *stats.FastestWin != 90 {
		t.Error("AggregateStats modified its input")
	}
}

func TestStatsDerivedValues(t *testing.T) {
	s := GameStats{GamesPlayed: 4, GamesWon: 1, TotalScore: 1002}
	if got := s.WinRate(); got != 25 {
		t.Errorf("WinRate() = %v, want 25", got)
	}
	if got := s.AverageScore(); got != 251 {
		t.Errorf("AverageScore() = %d, want 251", got)
	}

	var empty GameStats
	if empty.WinRate() != 0 || empty.AverageScore() != 0 {
		t.Error("empty stats should report zeros")
	}
}

func TestFormatSeconds(t *testing.T) {
	secs := 125.7
	if got := FormatSeconds(&secs); got != "2:05" {
		t.Errorf("FormatSeconds(125.7) = %q, want 2:05", got)
	}
	if got := FormatSeconds(nil); got != "-" {
		t.Errorf("FormatSeconds(nil) = %q, want -", got)
	}
}
