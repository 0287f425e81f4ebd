// Package params holds the fixed registry of named parameter sets that raw
// benchmark names refer to.
package params

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownSet is returned when a name matches no registered parameter set.
var ErrUnknownSet = errors.New("unknown parameter set")

// Set describes one parameter configuration a benchmark was run under.
type Set struct {
	ID             string `json:"id" yaml:"id"`
	Label          string `json:"label" yaml:"label"`
	MessageModulus int    `json:"message_modulus" yaml:"message_modulus"`
	CarryModulus   int    `json:"carry_modulus" yaml:"carry_modulus"`
	KeyChoice      string `json:"key_choice" yaml:"key_choice"` // "big" or "small"
	PublicKey      string `json:"public_key" yaml:"public_key"`
}

// Name returns the display label, the way the upstream library names its constants.
func (s Set) Name() string {
	return s.Label
}

var (
	MessageTwoCarryTwoCompactPK = Set{
		ID:             "param_message_2_carry_2_compact_pk",
		Label:          "PARAM_MESSAGE_2_CARRY_2_COMPACT_PK",
		MessageModulus: 4,
		CarryModulus:   4,
		KeyChoice:      "big",
		PublicKey:      "compact",
	}

	SmallMessageTwoCarryTwoCompactPK = Set{
		ID:             "param_small_message_2_carry_2_compact_pk",
		Label:          "PARAM_SMALL_MESSAGE_2_CARRY_2_COMPACT_PK",
		MessageModulus: 4,
		CarryModulus:   4,
		KeyChoice:      "small",
		PublicKey:      "compact",
	}
)

// registry is keyed by the lowercase ID. It is never written after init.
var registry = map[string]Set{
	MessageTwoCarryTwoCompactPK.ID:      MessageTwoCarryTwoCompactPK,
	SmallMessageTwoCarryTwoCompactPK.ID: SmallMessageTwoCarryTwoCompactPK,
}

// Resolve looks a parameter set up by name, ignoring case.
func Resolve(name string) (Set, error) {
	set, ok := registry[strings.ToLower(name)]
	if !ok {
		return Set{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownSet, name, strings.Join(knownIDs(), ", "))
	}
	return set, nil
}

func knownIDs() []string {
	sets := All()
	ids := make([]string, len(sets))
	for i, s := range sets {
		ids[i] = s.ID
	}
	return ids
}

// All returns every registered set sorted by ID.
func All() []Set {
	sets := make([]Set, 0, len(registry))
	for _, s := range registry {
		sets = append(sets, s)
	}
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].ID < sets[j].ID
	})
	return sets
}

// Resolver is the lookup surface the decoder depends on.
type Resolver interface {
	Resolve(name string) (Set, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(name string) (Set, error)

func (f ResolverFunc) Resolve(name string) (Set, error) {
	return f(name)
}

// Default resolves against the built-in registry.
var Default Resolver = ResolverFunc(Resolve)
