package extend

import (
	"errors"

	"github.com/katalvlaran/subgraph/heuristic"
)

// Sentinel errors for search invocation.
var (
	// ErrNilGraph is returned if either graph pointer is nil.
	ErrNilGraph = errors.New("extend: graph is nil")

	// ErrBadCopies is returned for a negative copy count.
	ErrBadCopies = errors.New("extend: copies must be non-negative")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the defined
	// set.
	ErrUnknownAlgorithm = errors.New("extend: unknown algorithm")

	// ErrSearchSpaceTooLarge is returned when the exact algorithm's
	// missing-edge table could not be materialized without overflowing its
	// indices. Such instances are far beyond exhaustive reach anyway; use
	// an approximate algorithm.
	ErrSearchSpaceTooLarge = errors.New("extend: exact search space too large")
)

// Algorithm selects the search strategy.
type Algorithm int

const (
	// Exact is the optimal exhaustive two-phase search.
	Exact Algorithm = iota

	// GreedySeed is the seed-growth approximation.
	GreedySeed

	// Assignment is the Hungarian-assignment approximation driven by a
	// heuristic cost matrix.
	Assignment
)

// String returns the CLI-facing name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Exact:
		return "exact"
	case GreedySeed:
		return "greedy"
	case Assignment:
		return "assign"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a CLI-facing name back onto its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a := Exact; a <= Assignment; a++ {
		if a.String() == s {
			return a, nil
		}
	}

	return 0, ErrUnknownAlgorithm
}

// Options configures a search run.
//
// Algorithm – which of the three strategies to dispatch to.
// Heuristic – cost-matrix family for the Assignment algorithm; the zero
// value selects heuristic.Default. Ignored by Exact and GreedySeed.
type Options struct {
	Algorithm Algorithm
	Heuristic heuristic.Type
}

// DefaultOptions returns the exact algorithm with the default heuristic.
func DefaultOptions() Options {
	return Options{Algorithm: Exact, Heuristic: heuristic.Default}
}
