package t2048

import (
	"time"

	"github.com/charmbracelet/log"
)

// Store persists the best score and cumulative statistics.
type Store interface {
	LoadBestScore() (int, error)
	SaveBestScore(score int) error
	LoadStats() (GameStats, error)
	SaveStats(stats GameStats) error
}

// ScoreRecord describes one finished session.
type ScoreRecord struct {
	SessionID   string
	Mode        Mode
	Score       int
	HighestTile int
	Moves       int
	Won         bool
	Duration    time.Duration
}

// ScoreRecorder is implemented by stores that keep a per-session leaderboard.
type ScoreRecorder interface {
	RecordScore(rec ScoreRecord) error
}

// bestEffortStore applies the persistence policy: reads fall back to zero
// values, writes never fail the caller. Errors are only logged.
type bestEffortStore struct {
	store  Store
	logger *log.Logger
}

func (s bestEffortStore) LoadBestScore() int {
	if s.store == nil {
		return 0
	}
	score, err := s.store.LoadBestScore()
	if err != nil {
		s.logger.Warn("could not load best score", "error", err)
		return 0
	}
	return max(score, 0)
}

func (s bestEffortStore) SaveBestScore(score int) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveBestScore(score); err != nil {
		s.logger.Warn("could not save best score", "error", err)
	}
}

func (s bestEffortStore) LoadStats() GameStats {
	if s.store == nil {
		return GameStats{}
	}
	stats, err := s.store.LoadStats()
	if err != nil {
		s.logger.Warn("could not load stats", "error", err)
		return GameStats{}
	}
	return stats
}

func (s bestEffortStore) SaveStats(stats GameStats) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveStats(stats); err != nil {
		s.logger.Warn("could not save stats", "error", err)
	}
}

func (s bestEffortStore) RecordScore(rec ScoreRecord) {
	recorder, ok := s.store.(ScoreRecorder)
	if !ok {
		return
	}
	if err := recorder.RecordScore(rec); err != nil {
		s.logger.Warn("could not record score", "session", rec.SessionID, "error", err)
	}
}
