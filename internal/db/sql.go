package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// sqlArchive holds the queries shared by the sqlite and postgres stores.
// Queries are written with '?' placeholders and rebound for postgres.
type sqlArchive struct {
	db       *sql.DB
	numbered bool
}

func (a *sqlArchive) rebind(query string) string {
	if !a.numbered {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (a *sqlArchive) migrate(queries []string) error {
	for _, q := range queries {
		if _, err := a.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (a *sqlArchive) Close() error {
	return a.db.Close()
}

// SaveRun writes the run header and all its records in one transaction.
func (a *sqlArchive) SaveRun(ctx context.Context, run Run) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		a.rebind(`INSERT INTO runs (id, started_at, input_dir, record_count) VALUES (?, ?, ?, ?)`),
		run.ID, run.StartedAt.UnixNano(), run.InputDir, len(run.Records))
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", run.ID, err)
	}

	insert := a.rebind(`INSERT INTO records (run_id, seq, name, benchmark_name, parameter_set_id, parameter_set_label, operator, value) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	for i, r := range run.Records {
		_, err := tx.ExecContext(ctx, insert,
			run.ID, i, r.Name, r.BenchmarkName, r.ParameterSetID, r.ParameterSetLabel, r.Operator, r.Value)
		if err != nil {
			return fmt.Errorf("failed to insert record %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run %s: %w", run.ID, err)
	}
	return nil
}
