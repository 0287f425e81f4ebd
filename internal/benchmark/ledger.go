package benchmark

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Ledger writes the flat "<name>,<nanoseconds>" export. The target file is
// truncated when the ledger is opened; it is not a durable log.
type Ledger struct {
	path string
	f    *os.File
	w    *bufio.Writer
	n    int
}

// NewLedger creates (or truncates) the ledger file at path.
func NewLedger(path string) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, ioFailure(fmt.Sprintf("failed to create directory %s", dir), err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, ioFailure(fmt.Sprintf("failed to create ledger %s", path), err)
	}
	return &Ledger{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

// Lines returns how many lines were written so far.
func (l *Ledger) Lines() int {
	return l.n
}

// Write appends one line for r.
func (l *Ledger) Write(r Record) error {
	line := make([]byte, 0, len(r.Name)+24)
	line = append(line, r.Name...)
	line = append(line, ',')
	line = strconv.AppendInt(line, r.Value, 10)
	line = append(line, '\n')

	if _, err := l.w.Write(line); err != nil {
		return ioFailure(fmt.Sprintf("cannot write %s result into %s", r.Name, l.path), err)
	}
	l.n++
	return nil
}

// Close flushes buffered lines and closes the file.
func (l *Ledger) Close() error {
	flushErr := l.w.Flush()
	closeErr := l.f.Close()
	if flushErr != nil {
		return ioFailure(fmt.Sprintf("failed to flush ledger %s", l.path), flushErr)
	}
	if closeErr != nil {
		return ioFailure(fmt.Sprintf("failed to close ledger %s", l.path), closeErr)
	}
	return nil
}
