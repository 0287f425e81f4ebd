package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL
type PostgresStore struct {
	*sqlArchive
}

// NewPostgresStore creates a new Postgres store and applies migrations
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := newPostgresStore(db)
	if err := store.migrate(postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func newPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{sqlArchive: &sqlArchive{db: db, numbered: true}}
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at BIGINT NOT NULL,
		input_dir TEXT NOT NULL,
		record_count INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS records (
		id BIGSERIAL PRIMARY KEY,
		run_id TEXT NOT NULL REFERENCES runs(id),
		seq INTEGER NOT NULL,
		name TEXT NOT NULL,
		benchmark_name TEXT NOT NULL,
		parameter_set_id TEXT NOT NULL,
		parameter_set_label TEXT NOT NULL,
		operator TEXT NOT NULL,
		value BIGINT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_records_run ON records(run_id, seq);`,
	`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);`,
}
