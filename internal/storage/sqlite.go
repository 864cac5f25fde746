// Package storage persists high scores and flight logs in a local SQLite
// database.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database holding scores and flight history.
type Store struct {
	db *sql.DB
}

// ScoreEntry is a single high-score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	CreatedAt time.Time
}

// FlightEntry is one logged landing attempt.
type FlightEntry struct {
	ID         int64
	GameID     string
	Outcome    string // "landed" or "crashed"
	Score      int
	FuelUsed   float64
	Duration   float64 // Seconds
	Difficulty string
	CreatedAt  time.Time
}

// GameStats aggregates play history for one game.
type GameStats struct {
	GameID    string
	Plays     int
	HighScore int
	AvgScore  float64
}

// New opens (creating if necessary) the database at the given path and
// runs migrations.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot reach database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id    TEXT NOT NULL,
	player     TEXT NOT NULL DEFAULT 'anonymous',
	score      INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_scores_game ON scores(game_id, score DESC);

CREATE TABLE IF NOT EXISTS flights (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id       TEXT NOT NULL,
	outcome       TEXT NOT NULL,
	score         INTEGER NOT NULL,
	fuel_used     REAL NOT NULL,
	duration_secs REAL NOT NULL,
	difficulty    TEXT NOT NULL,
	created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_flights_game ON flights(game_id, created_at DESC);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("storage: cannot run migrations: %w", err)
	}
	return nil
}

// SaveScore records a score for a game.
func (s *Store) SaveScore(gameID, player string, score int) error {
	if player == "" {
		player = "anonymous"
	}
	_, err := s.db.Exec(
		`INSERT INTO scores (game_id, player, score) VALUES (?, ?, ?)`,
		gameID, player, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// TopScores returns the best scores for a game, highest first.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, created_at
		 FROM scores WHERE game_id = ?
		 ORDER BY score DESC, created_at ASC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// HighScore returns the best score for a game, or 0 if none recorded.
func (s *Store) HighScore(gameID string) (int, error) {
	var high sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(score) FROM scores WHERE game_id = ?`, gameID,
	).Scan(&high)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(high.Int64), nil
}

// ClearScores deletes all scores for a game and returns how many were
// removed.
func (s *Store) ClearScores(gameID string) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM scores WHERE game_id = ?`, gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// GetGameStats aggregates play counts and score statistics for a game.
func (s *Store) GetGameStats(gameID string) (GameStats, error) {
	stats := GameStats{GameID: gameID}
	var high, avg sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(score), AVG(score) FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Plays, &high, &avg)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query game stats: %w", err)
	}
	stats.HighScore = int(high.Float64)
	stats.AvgScore = avg.Float64
	return stats, nil
}

// SaveFlight records one finished landing attempt.
func (s *Store) SaveFlight(f FlightEntry) error {
	_, err := s.db.Exec(
		`INSERT INTO flights (game_id, outcome, score, fuel_used, duration_secs, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		f.GameID, f.Outcome, f.Score, f.FuelUsed, f.Duration, f.Difficulty,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save flight: %w", err)
	}
	return nil
}

// RecentFlights returns the latest flights for a game, newest first.
func (s *Store) RecentFlights(gameID string, limit int) ([]FlightEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, outcome, score, fuel_used, duration_secs, difficulty, created_at
		 FROM flights WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query flights: %w", err)
	}
	defer rows.Close()

	var entries []FlightEntry
	for rows.Next() {
		var e FlightEntry
		if err := rows.Scan(&e.ID, &e.GameID, &e.Outcome, &e.Score, &e.FuelUsed, &e.Duration, &e.Difficulty, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan flight row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
