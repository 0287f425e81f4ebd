// Package db archives finalized benchmark runs in sqlite, postgres or redis.
package db

import (
	"context"
	"time"

	"benchledger/internal/benchmark"

	"github.com/google/uuid"
)

// RecordRow is the archived shape of one normalized record.
type RecordRow struct {
	Name              string `json:"name"`
	BenchmarkName     string `json:"benchmark_name"`
	ParameterSetID    string `json:"parameter_set_id"`
	ParameterSetLabel string `json:"parameter_set_label"`
	Operator          string `json:"operator"`
	Value             int64  `json:"value"`
}

// Run is one pipeline invocation and everything it emitted.
type Run struct {
	ID        string      `json:"id"`
	StartedAt time.Time   `json:"started_at"`
	InputDir  string      `json:"input_dir"`
	Records   []RecordRow `json:"records"`
}

// Store interface defines the methods for persistent storage
type Store interface {
	Close() error
	SaveRun(ctx context.Context, run Run) error
}

// NewRun snapshots a collection under a fresh run id.
func NewRun(inputDir string, startedAt time.Time, coll *benchmark.Collection) Run {
	run := Run{
		ID:        uuid.NewString(),
		StartedAt: startedAt.UTC(),
		InputDir:  inputDir,
		Records:   make([]RecordRow, 0, coll.Len()),
	}
	for _, e := range coll.Entries() {
		run.Records = append(run.Records, RecordRow{
			Name:              e.Name,
			BenchmarkName:     e.BenchmarkName,
			ParameterSetID:    e.ParameterSetID,
			ParameterSetLabel: e.ParameterSetLabel,
			Operator:          string(e.Operator),
			Value:             e.Value,
		})
	}
	return run
}
