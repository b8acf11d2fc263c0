package database

import (
	"database/sql"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/uzmarket/uzmarket-golang/internal/database/migrations"
	_ "modernc.org/sqlite"
)

// DefaultPath is the SQLite file created next to the binary on first run.
const DefaultPath = "uzmarket.db"

// Store owns the SQLite handle and all product/admin queries.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) the SQLite database at path and applies
// the embedded schema migrations. Tests point it at a temp directory; the
// server uses DefaultPath.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	// 1. Open the connection pool. WAL keeps readers off the writer's
	// back; busy_timeout covers the brief lock handoffs.
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// 2. Configure the pool. SQLite allows a single writer at a time, so
	// one open connection is the whole pool.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	// 3. Ping to verify the file is actually usable.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	// 4. Bring the schema up to date.
	if err := applyMigrations(db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Printf("Database ready at %s", path)
	return &Store{db: db}, nil
}

// Close closes the underlying SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
