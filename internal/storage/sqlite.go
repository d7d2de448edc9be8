// Package storage provides SQLite-based persistence for 2048 scores and statistics.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished session.
type ScoreEntry struct {
	ID          int64
	SessionID   string
	Mode        string
	Score       int
	HighestTile int
	Moves       int
	Won         bool
	Duration    time.Duration
	CreatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// best_score and stats are single-row tables keyed by id = 1.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			highest_tile INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(mode, score DESC);

		CREATE TABLE IF NOT EXISTS best_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			games_played INTEGER NOT NULL DEFAULT 0,
			games_won INTEGER NOT NULL DEFAULT 0,
			total_score INTEGER NOT NULL DEFAULT 0,
			highest_tile INTEGER NOT NULL DEFAULT 0,
			total_moves INTEGER NOT NULL DEFAULT 0,
			total_merges INTEGER NOT NULL DEFAULT 0,
			longest_combo INTEGER NOT NULL DEFAULT 0,
			fastest_win REAL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadBestScore returns the stored best score, 0 if none was saved.
func (s *Store) LoadBestScore() (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM best_score WHERE id = 1").Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load best score: %w", err)
	}
	return score, nil
}

// SaveBestScore overwrites the stored best score.
func (s *Store) SaveBestScore(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_score (id, score) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score`,
		score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// LoadStats returns the stored statistics, zero-valued if none were saved.
func (s *Store) LoadStats() (t2048.GameStats, error) {
	var stats t2048.GameStats
	var fastest sql.NullFloat64

	err := s.db.QueryRow(
		`SELECT games_played, games_won, total_score, highest_tile,
		        total_moves, total_merges, longest_combo, fastest_win
		 FROM stats WHERE id = 1`,
	).Scan(
		&stats.GamesPlayed,
		&stats.GamesWon,
		&stats.TotalScore,
		&stats.HighestTile,
		&stats.TotalMoves,
		&stats.TotalMerges,
		&stats.LongestCombo,
		&fastest,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return t2048.GameStats{}, nil
	}
	if err != nil {
		return t2048.GameStats{}, fmt.Errorf("storage: cannot load stats: %w", err)
	}

	if fastest.Valid {
		v := fastest.Float64
		stats.FastestWin = &v
	}
	return stats, nil
}

// SaveStats overwrites the stored statistics.
func (s *Store) SaveStats(stats t2048.GameStats) error {
	var fastest sql.NullFloat64
	if stats.FastestWin != nil {
		fastest = sql.NullFloat64{Float64: *stats.FastestWin, Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO stats
		 (id, games_played, games_won, total_score, highest_tile, total_moves, total_merges, longest_combo, fastest_win)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   games_played = excluded.games_played,
		   games_won = excluded.games_won,
		   total_score = excluded.total_score,
		   highest_tile = excluded.highest_tile,
		   total_moves = excluded.total_moves,
		   total_merges = excluded.total_merges,
		   longest_combo = excluded.longest_combo,
		   fastest_win = excluded.fastest_win`,
		stats.GamesPlayed,
		stats.GamesWon,
		stats.TotalScore,
		stats.HighestTile,
		stats.TotalMoves,
		stats.TotalMerges,
		stats.LongestCombo,
		fastest,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save stats: %w", err)
	}
	return nil
}

// RecordScore stores a finished session. Recording the same session twice
// keeps the first row.
func (s *Store) RecordScore(rec t2048.ScoreRecord) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO scores
		 (session_id, mode, score, highest_tile, moves, won, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID,
		string(rec.Mode),
		rec.Score,
		rec.HighestTile,
		rec.Moves,
		rec.Won,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record score: %w", err)
	}
	return nil
}

// Ensure Store implements the game's persistence contracts
var (
	_ t2048.Store         = (*Store)(nil)
	_ t2048.ScoreRecorder = (*Store)(nil)
)

// TopScores retrieves the top N sessions for the given mode.
// An empty mode covers all modes. Results are ordered by score descending.
func (s *Store) TopScores(mode string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, mode, score, highest_tile, moves, won, duration_ms, created_at
		 FROM scores
		 WHERE ? = '' OR mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Mode, &e.Score, &e.HighestTile, &e.Moves, &e.Won, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score for the mode (all modes when empty).
// Returns 0 if no scores exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE ? = '' OR mode = ?",
		mode, mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Reset deletes all sessions, the best score and the statistics.
func (s *Store) Reset() error {
	for _, table := range []string{"scores", "best_score", "stats"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
