package benchmark

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput classifies raw data that breaks the encoding contract:
	// unparseable JSON, a missing separator, an unknown parameter set or an
	// invalid timing.
	ErrMalformedInput = errors.New("malformed input")

	// ErrIO classifies filesystem and sink failures.
	ErrIO = errors.New("i/o failure")
)

// EntryError locates a failure at a file, and at a key within it when known.
type EntryError struct {
	File string
	Key  string
	Err  error
}

func (e *EntryError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("%s: key %q: %v", e.File, e.Key, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

func ioFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
