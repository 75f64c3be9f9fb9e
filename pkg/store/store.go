package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BauerAlexandr/the-snake/pkg/game"
	_ "modernc.org/sqlite"
)

// Store keeps statistics of finished runs in SQLite
type Store struct {
	db *sql.DB
}

// Run is one stored run
type Run struct {
	ID        int64
	SessionID string
	Length    int
	Ticks     int
	Start     time.Time
	End       time.Time
}

// Open opens (and creates if needed) the database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			start_time DATETIME,
			end_time DATETIME
		)`,
		`CREATE INDEX IF NOT EXISTS runs_length ON runs (length DESC)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table (%s): %w", query, err)
		}
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores a finished run
func (s *Store) SaveRun(rs game.RunStats) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (session_id, length, ticks, start_time, end_time) VALUES (?, ?, ?, ?, ?)`,
		rs.SessionID, rs.Length, rs.Ticks, rs.Start.UTC(), rs.End.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// Best returns the longest runs, longest first
func (s *Store) Best(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, length, ticks, start_time, end_time
		 FROM runs ORDER BY length DESC, ticks ASC, id ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Length, &r.Ticks, &r.Start, &r.End); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// SessionRuns returns how many runs a session finished
func (s *Store) SessionRuns(sessionID string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM runs WHERE session_id = ?`, sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}
