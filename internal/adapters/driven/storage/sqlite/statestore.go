// Package sqlite provides the durable state store backing the
// account-connection flow.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/m-kupiec/music-app/internal/core/domain"
	"github.com/m-kupiec/music-app/internal/core/ports/driven"
	"github.com/m-kupiec/music-app/internal/logger"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// StateStore is a SQLite-backed key/value store. Connection state survives
// across runs; a Pop runs get-then-delete in one transaction.
type StateStore struct {
	db   *sql.DB
	path string
}

// NewStateStore opens (or creates) the state database in the given data
// directory. If dataDir is empty, defaults to ~/.music-app/data/state.db.
func NewStateStore(dataDir string) (*StateStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".music-app", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "state.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS connection_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating connection_state table: %w", err)
	}

	return &StateStore{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *StateStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *StateStore) Path() string {
	return s.path
}

// Get returns the value for key, or false when absent. Read failures also
// read as absent, so a corrupted database degrades to "no state" rather than
// an error surfaced to the flow.
func (s *StateStore) Get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM connection_state WHERE key = ?", key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Warn("state store read for %q: %v", key, err)
		}
		return "", false
	}
	return value, true
}

// Set stores value under key, replacing any previous value.
func (s *StateStore) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO connection_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("storing %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *StateStore) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM connection_state WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting %q: %w", key, err)
	}
	return nil
}

// Pop returns the value for key and removes it atomically.
func (s *StateStore) Pop(key string) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("starting pop transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	var value string
	err = tx.QueryRow("SELECT value FROM connection_state WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", key, err)
	}

	if _, err := tx.Exec("DELETE FROM connection_state WHERE key = ?", key); err != nil {
		return "", fmt.Errorf("deleting %q: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing pop: %w", err)
	}
	return value, nil
}
