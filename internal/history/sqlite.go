// Package history keeps a small local log of past searches. Only search
// metadata is stored here; job records themselves live in the in-memory
// session catalog and are never persisted.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded search.
type Entry struct {
	Keyword     string
	ResultCount int
	SearchedAt  time.Time
}

// Store appends and lists search entries in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dbPath and ensures the searches
// table exists.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging history db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS searches (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		keyword      TEXT NOT NULL,
		result_count INTEGER NOT NULL,
		searched_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating searches table: %w", err)
	}

	return &Store{db: db}, nil
}

// Record appends one search to the log.
func (s *Store) Record(keyword string, resultCount int) error {
	_, err := s.db.Exec("INSERT INTO searches (keyword, result_count) VALUES (?, ?)", keyword, resultCount)
	if err != nil {
		return fmt.Errorf("recording search %q: %w", keyword, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT keyword, result_count, searched_at FROM searches ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("listing search history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Keyword, &e.ResultCount, &e.SearchedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
