package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// registry is private so repeated runs in one process (tests) never collide
// with the global default registerer.
var registry = prometheus.NewRegistry()

var (
	filesProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "benchledger_files_processed_total",
		Help: "Raw results files fully processed",
	})
	recordsEmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "benchledger_records_emitted_total",
		Help: "Normalized records written to the ledger and report",
	})
	entriesSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "benchledger_entries_skipped_total",
		Help: "Malformed files or entries skipped in skip mode",
	})
	runFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "benchledger_run_failures_total",
		Help: "Runs aborted, by failure kind",
	}, []string{"kind"})
	runDuration = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "benchledger_last_run_duration_seconds",
		Help: "Wall time of the last directory walk",
	})
	lastSuccess = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "benchledger_last_success_timestamp_seconds",
		Help: "Unix time of the last successful run",
	})
)

func init() {
	registry.MustRegister(filesProcessed, recordsEmitted, entriesSkipped, runFailures, runDuration, lastSuccess)
}

// TrackFile counts one processed raw results file.
func TrackFile() {
	filesProcessed.Inc()
}

// TrackRecords counts emitted records.
func TrackRecords(n int) {
	if n > 0 {
		recordsEmitted.Add(float64(n))
	}
}

// TrackSkipped counts skipped files or entries.
func TrackSkipped(n int) {
	if n > 0 {
		entriesSkipped.Add(float64(n))
	}
}

// TrackFailure counts an aborted run.
func TrackFailure(kind string) {
	runFailures.WithLabelValues(kind).Inc()
}

// ObserveRunDuration records the wall time of a run.
func ObserveRunDuration(d time.Duration) {
	runDuration.Set(d.Seconds())
}

// MarkSuccess stamps the completion time of a successful run.
func MarkSuccess(t time.Time) {
	lastSuccess.Set(float64(t.Unix()))
}

// Gatherer exposes the run metrics, mostly for tests.
func Gatherer() prometheus.Gatherer {
	return registry
}

// WriteMetricsTextfile dumps the run metrics in the text exposition format,
// for pickup by a node_exporter textfile collector.
func WriteMetricsTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
