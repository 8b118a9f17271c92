// Package storage provides SQLite-based persistence for finished puzzle sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/hive/internal/config"
)

// Store manages the SQLite database connection for result history.
type Store struct {
	db *sql.DB
}

// Result is one recorded session on a puzzle.
type Result struct {
	ID         int64
	PuzzleID   string
	Score      int
	TotalScore int
	WordsFound int
	TotalWords int
	CreatedAt  time.Time
}

// Progress returns Score/TotalScore clamped to [0, 1].
func (r Result) Progress() float64 {
	if r.TotalScore <= 0 {
		return 0
	}
	p := float64(r.Score) / float64(r.TotalScore)
	if p > 1 {
		return 1
	}
	return p
}

// PuzzleStats holds aggregated history for one puzzle.
type PuzzleStats struct {
	PuzzleID   string
	Sessions   int
	BestScore  int
	AvgScore   float64
	MostWords  int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// The special path ":memory:" opens a private in-memory database.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		expanded, err := config.ExpandHome(dbPath)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		dbPath = expanded

		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if dbPath == ":memory:" {
		// Each pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
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
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			total_score INTEGER NOT NULL,
			words_found INTEGER NOT NULL,
			total_words INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_puzzle_id ON results(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(puzzle_id, score DESC);
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

// SaveResult records a finished session and returns the new row ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO results (puzzle_id, score, total_score, words_found, total_words)
		 VALUES (?, ?, ?, ?, ?)`,
		r.PuzzleID, r.Score, r.TotalScore, r.WordsFound, r.TotalWords,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best N results for a puzzle, highest score first.
// An empty puzzleID returns results across every puzzle.
func (s *Store) TopResults(puzzleID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, puzzle_id, score, total_score, words_found, total_words, created_at
		 FROM results`
	args := []any{}
	if puzzleID != "" {
		query += ` WHERE puzzle_id = ?`
		args = append(args, puzzleID)
	}
	query += ` ORDER BY score DESC, id ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.PuzzleID, &r.Score, &r.TotalScore, &r.WordsFound, &r.TotalWords, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		entries = append(entries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest recorded score for a puzzle, or 0.
func (s *Store) BestScore(puzzleID string) (int, error) {
	var best int
	err := s.db.QueryRow(
		"SELECT COALESCE(MAX(score), 0) FROM results WHERE puzzle_id = ?",
		puzzleID,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get best score: %w", err)
	}
	return best, nil
}

// ClearResults removes all history for a puzzle.
func (s *Store) ClearResults(puzzleID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE puzzle_id = ?", puzzleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats retrieves aggregated history for every puzzle that has been played.
func (s *Store) Stats() (map[string]*PuzzleStats, error) {
	rows, err := s.db.Query(
		`SELECT puzzle_id, COUNT(*), MAX(score), AVG(score), MAX(words_found), MAX(created_at)
		 FROM results
		 GROUP BY puzzle_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PuzzleStats)
	for rows.Next() {
		var ps PuzzleStats
		var lastPlayed any
		if err := rows.Scan(&ps.PuzzleID, &ps.Sessions, &ps.BestScore, &ps.AvgScore, &ps.MostWords, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastPlayed = parseTime(lastPlayed)
		stats[ps.PuzzleID] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both driver-native time values and SQLite text timestamps.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
