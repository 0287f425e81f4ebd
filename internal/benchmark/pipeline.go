package benchmark

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"benchledger/internal/params"
	"benchledger/internal/telemetry"
)

// Options tunes a Pipeline.
type Options struct {
	// SkipMalformed logs and skips malformed files and entries instead of
	// aborting the run. I/O failures stay fatal.
	SkipMalformed bool

	// Resolver defaults to the built-in parameter registry.
	Resolver params.Resolver
}

// Summary describes a finished run.
type Summary struct {
	Files    int
	Records  int
	Skipped  int
	Duration time.Duration
}

// Pipeline walks a raw-results directory and feeds every decoded entry to
// the ledger and the collection.
type Pipeline struct {
	ledger *Ledger
	coll   *Collection
	opts   Options
}

// NewPipeline wires a pipeline to its two sinks.
func NewPipeline(ledger *Ledger, coll *Collection, opts Options) *Pipeline {
	if opts.Resolver == nil {
		opts.Resolver = params.Default
	}
	return &Pipeline{ledger: ledger, coll: coll, opts: opts}
}

// Run processes every file of dir in name order.
func (p *Pipeline) Run(ctx context.Context, dir string) (*Summary, error) {
	start := time.Now()
	summary := &Summary{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ioFailure("cannot read results directory "+dir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(dir, entry.Name())
		records, skipped, err := p.readFile(path)
		if err != nil {
			if p.opts.SkipMalformed && errors.Is(err, ErrMalformedInput) {
				telemetry.LogWarn("skipping malformed raw results file", "path", path, "error", err)
				telemetry.TrackSkipped(1)
				summary.Skipped++
				continue
			}
			return nil, err
		}
		summary.Skipped += skipped

		for _, r := range records {
			if err := p.ledger.Write(r); err != nil {
				return nil, &EntryError{File: path, Key: r.Name, Err: err}
			}
			p.coll.Add(r)
		}

		summary.Files++
		summary.Records += len(records)
		telemetry.TrackFile()
		telemetry.TrackRecords(len(records))
		telemetry.LogDebug("processed raw results file", "path", path, "records", len(records), "skipped", skipped)
	}

	summary.Duration = time.Since(start)
	telemetry.ObserveRunDuration(summary.Duration)
	return summary, nil
}

// readFile decodes every entry of one raw results file. In fatal mode a
// single bad entry fails the whole file before anything is emitted.
func (p *Pipeline) readFile(path string) ([]Record, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, ioFailure("cannot open raw results file "+path, err)
	}

	var raw map[string]*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, &EntryError{File: path, Err: malformed("invalid raw results JSON: %v", err)}
	}
	if raw == nil {
		return nil, 0, &EntryError{File: path, Err: malformed("raw results file does not hold a JSON object")}
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records := make([]Record, 0, len(keys))
	skipped := 0
	for _, key := range keys {
		r, err := p.resolve(key, raw[key])
		if err != nil {
			err = &EntryError{File: path, Key: key, Err: err}
			if !p.opts.SkipMalformed {
				return nil, 0, err
			}
			telemetry.LogWarn("skipping malformed entry", "path", path, "key", key, "error", err)
			telemetry.TrackSkipped(1)
			skipped++
			continue
		}
		r.Source = path
		records = append(records, r)
	}
	return records, skipped, nil
}

func (p *Pipeline) resolve(key string, value *float64) (Record, error) {
	benchName, set, err := Decode(key, p.opts.Resolver)
	if err != nil {
		return Record{}, err
	}
	if value == nil {
		return Record{}, malformed("timing is null")
	}
	ns, err := ToNanoseconds(*value)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Name:          key,
		BenchmarkName: benchName,
		ParameterSet:  set,
		Label:         set.Name(),
		Operator:      OperatorAtomic,
		Value:         ns,
		Extra:         0,
		Tags:          []string{},
	}, nil
}

// FailureKind names the class of err for metrics labels.
func FailureKind(err error) string {
	switch {
	case errors.Is(err, ErrMalformedInput):
		return "malformed_input"
	case errors.Is(err, ErrIO):
		return "io"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "other"
	}
}
