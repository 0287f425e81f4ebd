package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	*sqlArchive
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// One writer; sqlite serializes anyway.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{sqlArchive: &sqlArchive{db: db}}
	if err := store.migrate(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		input_dir TEXT NOT NULL,
		record_count INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id),
		seq INTEGER NOT NULL,
		name TEXT NOT NULL,
		benchmark_name TEXT NOT NULL,
		parameter_set_id TEXT NOT NULL,
		parameter_set_label TEXT NOT NULL,
		operator TEXT NOT NULL,
		value INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_records_run ON records(run_id, seq);`,
	`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);`,
}
