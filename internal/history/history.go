// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists executed searches in a local SQLite database.
// Only query metadata is stored — never the fetched feed content — so past
// searches can be listed without caching API responses.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/arxiv-summarizer/pkg/types"
)

const defaultLimit = 10

// Store manages the search history SQLite database.
type Store struct {
	db    *sql.DB
	limit int
}

// Open opens or creates the history database at cfg.Path, creating parent
// directories and the schema as needed.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("history database path is empty")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	s := &Store{db: db, limit: limit}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS searches (
		rowid INTEGER PRIMARY KEY AUTOINCREMENT,
		term TEXT NOT NULL,
		max_results INTEGER NOT NULL,
		results INTEGER NOT NULL,
		at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record stores one executed search with its result count.
func (s *Store) Record(ctx context.Context, term string, maxResults, results int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (term, max_results, results, at) VALUES (?, ?, ?, ?)`,
		term, maxResults, results, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

// Recent returns the most recently executed searches, newest first, capped at
// the configured limit.
func (s *Store) Recent(ctx context.Context) ([]types.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT term, max_results, results, at FROM searches ORDER BY rowid DESC LIMIT ?`, s.limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		var e types.HistoryEntry
		var at string
		if err := rows.Scan(&e.Term, &e.MaxResults, &e.Results, &at); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, at); parseErr == nil {
			e.At = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
