// ABOUTME: SQLite implementation of the Keyring using modernc.org/sqlite
// ABOUTME: Persists session keys across process restarts with automatic schema creation

package session

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteKeyring implements Keyring on a single-table SQLite database.
type SQLiteKeyring struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteKeyring opens (or creates) the keyring database at the given
// path. Parent directories are created if needed.
func NewSQLiteKeyring(path string) (*SQLiteKeyring, error) {
	logger := slog.Default().With("component", "keyring")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating keyring directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening keyring database: %w", err)
	}

	// WAL keeps the CLI and a long-running console from blocking each other
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS keyring (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating keyring schema: %w", err)
	}

	logger.Debug("keyring opened", "path", path)
	return &SQLiteKeyring{db: db, logger: logger}, nil
}

// Get returns the value for key, or ErrKeyNotFound.
func (k *SQLiteKeyring) Get(key string) (string, error) {
	var value string
	err := k.db.QueryRow("SELECT value FROM keyring WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, nil
}

// Set stores the value under key, replacing any previous value.
func (k *SQLiteKeyring) Set(key, value string) error {
	_, err := k.db.Exec(`
		INSERT INTO keyring (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (k *SQLiteKeyring) Delete(key string) error {
	_, err := k.db.Exec("DELETE FROM keyring WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (k *SQLiteKeyring) Close() error {
	return k.db.Close()
}
