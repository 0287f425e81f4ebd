package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the report serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", s)
	}
}

// ReportEntry is the serialized shape of one record in the report.
type ReportEntry struct {
	Name              string       `json:"name" yaml:"name"`
	ParameterSetID    string       `json:"parameter_set_id" yaml:"parameter_set_id"`
	ParameterSetLabel string       `json:"parameter_set_label" yaml:"parameter_set_label"`
	BenchmarkName     string       `json:"benchmark_name" yaml:"benchmark_name"`
	Operator          OperatorType `json:"operator" yaml:"operator"`
	Value             int64        `json:"value" yaml:"value"`
	Extra             int64        `json:"extra" yaml:"extra"`
	Tags              []string     `json:"tags" yaml:"tags"`
}

// Entries projects the collection onto report entries.
func (c *Collection) Entries() []ReportEntry {
	entries := make([]ReportEntry, 0, len(c.records))
	for _, r := range c.records {
		tags := r.Tags
		if tags == nil {
			tags = []string{}
		}
		entries = append(entries, ReportEntry{
			Name:              r.Name,
			ParameterSetID:    r.ParameterSet.ID,
			ParameterSetLabel: r.Label,
			BenchmarkName:     r.BenchmarkName,
			Operator:          r.Operator,
			Value:             r.Value,
			Extra:             r.Extra,
			Tags:              tags,
		})
	}
	return entries
}

// Finalize serializes the whole collection to w. It is meant to be called
// once per run.
func (c *Collection) Finalize(w io.Writer, format Format) error {
	entries := c.Entries()

	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return ioFailure("failed to write report", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return ioFailure("failed to write report", err)
		}
		if err := enc.Close(); err != nil {
			return ioFailure("failed to write report", err)
		}
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
	return nil
}

// WriteReport finalizes c into the file at path. The file is replaced
// atomically so a failed run never leaves a half-written report behind.
func WriteReport(path string, format Format, c *Collection) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ioFailure(fmt.Sprintf("failed to create directory %s", dir), err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return ioFailure(fmt.Sprintf("failed to create report %s", path), err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return ioFailure(fmt.Sprintf("failed to create report %s", path), err)
	}

	if err := c.Finalize(tmp, format); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return ioFailure(fmt.Sprintf("failed to close report %s", path), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return ioFailure(fmt.Sprintf("failed to move report into %s", path), err)
	}
	return nil
}
