package t2048

import (
	"fmt"
	"time"
)

// GameStats accumulates results across sessions.
type GameStats struct {
	GamesPlayed  int
	GamesWon     int
	TotalScore   int
	HighestTile  int
	TotalMoves   int
	TotalMerges  int
	LongestCombo int
	FastestWin   *float64 // Seconds; nil until the first win
}

// Clone returns an independent copy.
func (s GameStats) Clone() GameStats {
	if s.FastestWin != nil {
		v := *s.FastestWin
		s.FastestWin = &v
	}
	return s
}

// WinRate returns the share of games won as a percentage.
func (s GameStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.GamesWon) / float64(s.GamesPlayed) * 100
}

// AverageScore returns the mean score per game, rounded to the nearest integer.
func (s GameStats) AverageScore() int {
	if s.GamesPlayed == 0 {
		return 0
	}
	return int(float64(s.TotalScore)/float64(s.GamesPlayed) + 0.5)
}

// FormatSeconds renders a duration in seconds as m:ss, or "-" for nil.
func FormatSeconds(seconds *float64) string {
	if seconds == nil {
		return "-"
	}
	total := int(*seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// AggregateStats folds a finished session into the running totals.
// mergeCount is the merge count of the move that ended the session, or 0 when
// the session ended some other way. elapsed is the session's wall-clock length.
func AggregateStats(stats GameStats, st GameState, mergeCount int, elapsed time.Duration) GameStats {
	out := stats.Clone()
	out.GamesPlayed++
	out.TotalScore += st.Score
	out.TotalMoves += st.MoveCount
	out.TotalMerges += mergeCount
	out.HighestTile = max(out.HighestTile, HighestTile(st.Grid))
	out.LongestCombo = max(out.LongestCombo, st.PeakCombo)

	if st.Won {
		out.GamesWon++
		secs := elapsed.Seconds()
		if out.FastestWin == nil || secs < *out.FastestWin {
			out.FastestWin = &secs
		}
	}
	return out
}
