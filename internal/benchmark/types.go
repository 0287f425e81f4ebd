package benchmark

import "benchledger/internal/params"

// OperatorType classifies the operation a benchmark measured.
type OperatorType string

const (
	OperatorAtomic OperatorType = "atomic"
)

// Record is one fully resolved timing measurement.
type Record struct {
	Name          string
	BenchmarkName string
	ParameterSet  params.Set
	Label         string
	Operator      OperatorType
	Value         int64 // nanoseconds
	Extra         int64
	Tags          []string

	// Source is the raw file the entry was read from.
	Source string
}

// Collection accumulates records for one run. Duplicates are kept.
type Collection struct {
	records []Record
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends r.
func (c *Collection) Add(r Record) {
	c.records = append(c.records, r)
}

// Len reports the number of records.
func (c *Collection) Len() int {
	return len(c.records)
}

// Records returns a copy of the accumulated records in insertion order.
func (c *Collection) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}
