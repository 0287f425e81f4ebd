package benchmark

import (
	"fmt"
	"strings"

	"benchledger/internal/params"
)

const (
	// Separator splits an encoded metric name into benchmark name and
	// parameter-set name. It is shared with the measurement harness.
	Separator = "_mean_"

	// FormatVersion identifies the name encoding agreed with the harness.
	FormatVersion = 1
)

// Decode splits name on the first Separator and resolves the remainder as a
// parameter set.
func Decode(name string, reg params.Resolver) (string, params.Set, error) {
	benchName, setName, found := strings.Cut(name, Separator)
	if !found {
		return "", params.Set{}, malformed("metric name %q does not contain separator %q", name, Separator)
	}
	if benchName == "" {
		return "", params.Set{}, malformed("metric name %q has an empty benchmark name", name)
	}
	// The name is the first ledger field.
	if strings.ContainsAny(name, ",\r\n") {
		return "", params.Set{}, malformed("metric name %q contains a ledger delimiter", name)
	}

	set, err := reg.Resolve(setName)
	if err != nil {
		return "", params.Set{}, fmt.Errorf("%w: metric name %q: %w", ErrMalformedInput, name, err)
	}
	return benchName, set, nil
}

// Encode builds the metric name Decode would split back into benchName and set.
func Encode(benchName string, set params.Set) string {
	return benchName + Separator + set.ID
}
