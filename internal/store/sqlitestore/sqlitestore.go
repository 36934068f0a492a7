// ABOUTME: SQLite-backed implementation of the native store contract.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package sqlitestore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	_ "modernc.org/sqlite"

	"github.com/Kayz-mann/healthbridge/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS samples (
	id TEXT PRIMARY KEY,
	type_code TEXT NOT NULL,
	kind INTEGER NOT NULL,
	start_at INTEGER NOT NULL,
	end_at INTEGER NOT NULL,
	quantity REAL,
	category INTEGER,
	activity INTEGER,
	duration_ns INTEGER,
	total_distance REAL,
	total_energy REAL,
	metadata TEXT,
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_samples_type_start ON samples(type_code, start_at);
CREATE INDEX IF NOT EXISTS idx_samples_type_end ON samples(type_code, end_at);
`

// Store is a local sample store on SQLite. Timestamps are persisted as
// epoch nanoseconds so range predicates and sorts are plain integer
// comparisons.
type Store struct {
	db     *sql.DB
	dbPath string
	closed atomic.Bool
}

// Open opens or creates a sample store at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}

	if err := s.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return s, nil
}

// Available reports whether the store can serve requests.
func (s *Store) Available() bool {
	return !s.closed.Load()
}

// Close closes the database connection. The store reports unavailable
// afterward.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

// configurePragmas sets up SQLite for concurrent reads and durability.
func (s *Store) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

var _ store.Store = (*Store)(nil)
