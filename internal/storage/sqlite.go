// Package storage implements the local job snapshot cache on SQLite.
//
// The cache exists so a crew can still pull up their schedule with no
// signal at a property. It is strictly a soft dependency: the classifier,
// checklist resolver, and window filter never read from it, and every
// command except sync and offline viewing works without a database file.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sudsywork/sudsy/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements the service.JobStore interface using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

var _ service.JobStore = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLite snapshot store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath must not be empty")
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
