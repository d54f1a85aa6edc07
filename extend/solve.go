package extend

import (
	"fmt"

	"github.com/katalvlaran/subgraph/multigraph"
)

// Solve computes a set of edge additions after which the target graph g
// contains `copies` embeddings of the pattern graph p.
//
// The returned edges are sorted by (Source, Destination) and each carries
// the multiplicity to add. A nil slice means g already suffices.
//
// Errors: ErrNilGraph, ErrBadCopies, ErrUnknownAlgorithm, and for the
// exact algorithm ErrSearchSpaceTooLarge.
func Solve(p, g *multigraph.Multigraph, copies int, opts Options) ([]multigraph.Edge, error) {
	if p == nil || g == nil {
		return nil, ErrNilGraph
	}
	if copies < 0 {
		return nil, fmt.Errorf("extend: %d copies: %w", copies, ErrBadCopies)
	}

	switch opts.Algorithm {
	case Exact:
		return runExact(p, g, copies)
	case GreedySeed:
		return runGreedySeed(p, g, copies), nil
	case Assignment:
		return runAssignment(p, g, copies, opts.Heuristic)
	default:
		return nil, fmt.Errorf("extend: algorithm %d: %w", opts.Algorithm, ErrUnknownAlgorithm)
	}
}
