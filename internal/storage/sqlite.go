// Package storage provides SQLite-based persistence for solve runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry records the outcome of a single solve.
type RunEntry struct {
	ID        int64
	BoardID   string
	BoardSize int
	Budget    int
	Reachable int // Cells in the distance field
	MaxDist   int // Largest distance in the field
	CreatedAt time.Time
}

// BoardStats contains aggregated statistics for one board.
type BoardStats struct {
	BoardID      string
	RunCount     int
	MaxReachable int
	LastSolved   time.Time
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
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_id TEXT NOT NULL,
			board_size INTEGER NOT NULL,
			budget INTEGER NOT NULL,
			reachable INTEGER NOT NULL,
			max_dist INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_board_id ON runs(board_id);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(created_at DESC);
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

// SaveRun records a solve outcome. Returns the ID of the inserted record.
func (s *Store) SaveRun(entry RunEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (board_id, board_size, budget, reachable, max_dist) VALUES (?, ?, ?, ?, ?)",
		entry.BoardID, entry.BoardSize, entry.Budget, entry.Reachable, entry.MaxDist,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent solve runs across all boards.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, board_id, board_size, budget, reachable, max_dist, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.BoardID, &e.BoardSize, &e.Budget, &e.Reachable, &e.MaxDist, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats retrieves aggregated statistics for a specific board.
// Returns nil if the board has never been solved.
func (s *Store) Stats(boardID string) (*BoardStats, error) {
	stats := &BoardStats{BoardID: boardID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(reachable), 0)
		 FROM runs WHERE board_id = ?`,
		boardID,
	).Scan(&stats.RunCount, &stats.MaxReachable)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get board stats: %w", err)
	}
	if stats.RunCount == 0 {
		return nil, nil
	}

	var lastSolved any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE board_id = ? ORDER BY id DESC LIMIT 1`,
		boardID,
	).Scan(&lastSolved)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last solved: %w", err)
	}
	if err == nil {
		stats.LastSolved = parseTimestamp(lastSolved)
	}

	return stats, nil
}

// ClearRuns deletes all recorded runs for the given board.
func (s *Store) ClearRuns(boardID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE board_id = ?", boardID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
