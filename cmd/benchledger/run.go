package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"benchledger/internal/benchmark"
	"benchledger/internal/config"
	"benchledger/internal/db"
	"benchledger/internal/telemetry"
)

// newStoreFunc allows tests to swap the archive backend.
var newStoreFunc = func(cfg db.StoreConfig) (db.Store, error) { return db.NewStore(cfg) }

// runResult is what the summary printer reports.
type runResult struct {
	Summary     *benchmark.Summary
	LedgerPath  string
	LedgerLines int
	ReportPath  string
	RunID       string
}

func runIngest(ctx context.Context, s config.Settings, inputDir string, out io.Writer) error {
	startedAt := time.Now()

	format, err := benchmark.ParseFormat(s.ReportFormat)
	if err != nil {
		return err
	}

	// Relative input paths follow the same working-directory convention as the outputs.
	if !filepath.IsAbs(inputDir) {
		inputDir = filepath.Join(s.WorkDir, inputDir)
	}

	res := runResult{
		LedgerPath: filepath.Join(s.WorkDir, s.LedgerFile),
		ReportPath: filepath.Join(s.WorkDir, s.ReportFile),
	}

	telemetry.LogInfo("starting benchmark ingestion",
		"input_dir", inputDir, "ledger", res.LedgerPath, "report", res.ReportPath,
		"skip_malformed", s.SkipMalformed, "format_version", benchmark.FormatVersion)

	ledger, err := benchmark.NewLedger(res.LedgerPath)
	if err != nil {
		return finish(s, err)
	}

	coll := benchmark.NewCollection()
	pipeline := benchmark.NewPipeline(ledger, coll, benchmark.Options{SkipMalformed: s.SkipMalformed})

	summary, runErr := pipeline.Run(ctx, inputDir)
	closeErr := ledger.Close()
	if runErr != nil {
		return finish(s, runErr)
	}
	if closeErr != nil {
		return finish(s, closeErr)
	}
	res.Summary = summary
	res.LedgerLines = ledger.Lines()

	if err := benchmark.WriteReport(res.ReportPath, format, coll); err != nil {
		return finish(s, err)
	}

	if s.Archive.Type != "" {
		id, err := archiveRun(ctx, s.Archive, inputDir, startedAt, coll)
		if err != nil {
			return finish(s, fmt.Errorf("%w: %w", benchmark.ErrIO, err))
		}
		res.RunID = id
	}

	telemetry.MarkSuccess(time.Now())
	telemetry.LogInfo("benchmark ingestion complete",
		"files", summary.Files, "records", summary.Records, "skipped", summary.Skipped,
		"duration", summary.Duration.String())

	if err := finish(s, nil); err != nil {
		return err
	}
	printSummary(out, res)
	return nil
}

func archiveRun(ctx context.Context, a config.ArchiveSettings, inputDir string, startedAt time.Time, coll *benchmark.Collection) (string, error) {
	store, err := newStoreFunc(db.StoreConfig{
		Type:             a.Type,
		ConnectionString: a.DSN,
		RedisAddr:        a.RedisAddr,
		RedisTTL:         a.RedisTTL,
	})
	if err != nil {
		return "", fmt.Errorf("failed to open archive: %w", err)
	}
	defer store.Close()

	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		absInput = inputDir
	}
	run := db.NewRun(absInput, startedAt, coll)
	if err := store.SaveRun(ctx, run); err != nil {
		return "", fmt.Errorf("failed to archive run: %w", err)
	}
	telemetry.LogDebug("archived run", "run_id", run.ID, "store", a.Type, "records", len(run.Records))
	return run.ID, nil
}

// finish writes the metrics textfile, when configured, and passes runErr
// through. A metrics write failure only fails an otherwise successful run.
func finish(s config.Settings, runErr error) error {
	if runErr != nil {
		telemetry.TrackFailure(benchmark.FailureKind(runErr))
	}
	if s.Metrics.Textfile == "" {
		return runErr
	}
	if err := telemetry.WriteMetricsTextfile(s.Metrics.Textfile); err != nil {
		if runErr != nil {
			telemetry.LogError("failed to write metrics", err)
			return runErr
		}
		return err
	}
	return runErr
}
