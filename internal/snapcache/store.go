// Package snapcache caches raw FPL API payloads in SQLite so repeated runs
// within the freshness window reuse the last fetch instead of hitting the
// API again.
package snapcache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const tableName = "fpl_payloads"

// Store is a SQLite-backed payload cache. A nil *Store is a valid no-op
// cache, which is how the "none" backend is represented.
type Store struct {
	db *sql.DB
}

// DefaultDBPath returns the cache database location under the user cache
// directory.
func DefaultDBPath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve user cache dir: %w", err)
	}
	dir := filepath.Join(base, "fplassist")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create cache dir %s: %w", dir, err)
	}
	return filepath.Join(dir, "snapshots.db"), nil
}

// Open initializes the cache at dbPath, creating the schema if needed.
// An empty dbPath resolves to DefaultDBPath.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		var err error
		dbPath, err = DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot cache at %q: %w", dbPath, err)
	}
	// Single connection avoids "database is locked" errors.
	db.SetMaxOpenConns(1)

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			cache_key TEXT PRIMARY KEY,
			payload BLOB NOT NULL,
			fetched_at INTEGER NOT NULL
		);
	`, tableName)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the cached payload for key if it is younger than maxAge.
func (s *Store) Get(key string, maxAge time.Duration) ([]byte, bool) {
	if s == nil || s.db == nil {
		return nil, false
	}
	var payload []byte
	var fetchedAt int64
	row := s.db.QueryRow(
		fmt.Sprintf("SELECT payload, fetched_at FROM %s WHERE cache_key = ?", tableName), key)
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		return nil, false
	}
	if time.Since(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, false
	}
	return payload, true
}

// Put stores a payload under key, replacing any previous entry.
func (s *Store) Put(key string, payload []byte) error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.Exec(
		fmt.Sprintf("INSERT OR REPLACE INTO %s (cache_key, payload, fetched_at) VALUES (?, ?, ?)", tableName),
		key, payload, time.Now().Unix())
	return err
}

// Status reports the entry count and the most recent fetch time.
func (s *Store) Status() (entries int, lastFetch time.Time, err error) {
	if s == nil || s.db == nil {
		return 0, time.Time{}, errors.New("cache is disabled")
	}
	var latest sql.NullInt64
	row := s.db.QueryRow(fmt.Sprintf("SELECT COUNT(*), MAX(fetched_at) FROM %s", tableName))
	if err := row.Scan(&entries, &latest); err != nil {
		return 0, time.Time{}, err
	}
	if latest.Valid {
		lastFetch = time.Unix(latest.Int64, 0)
	}
	return entries, lastFetch, nil
}

// Clear removes every cached payload.
func (s *Store) Clear() error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s", tableName))
	return err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
