package extend

import (
	"fmt"

	"github.com/katalvlaran/subgraph/assignment"
	"github.com/katalvlaran/subgraph/heuristic"
	"github.com/katalvlaran/subgraph/multigraph"
)

// runAssignment places one copy per target-vertex subset: for each of the
// first `copies` lexicographic k-subsets of the target, a heuristic cost
// matrix is built against the working copy, the Hungarian method picks the
// cheapest bijection, and the deficits it implies are committed into the
// working copy before the next subset is scored.
//
// Committing deficits is the sharing mechanism here: a later subset that
// reuses a vertex pair sees the already-added edges and pays nothing for
// them again.
func runAssignment(p, g *multigraph.Multigraph, copies int, ht heuristic.Type) ([]multigraph.Edge, error) {
	k := p.VertexCount()
	if copies <= 0 || k == 0 || k > g.VertexCount() {
		return nil, nil
	}

	work := g.Clone()
	acc := make(map[edgeKey]uint8)

	subset := make([]int, k)
	cg := g.Combinations(k)
	done := 0
	for done < copies && cg.Next() {
		copy(subset, cg.Current())

		w, err := heuristic.WeightMatrix(p, work, subset, ht)
		if err != nil {
			return nil, fmt.Errorf("extend: scoring subset %v: %w", subset, err)
		}
		match, _, err := assignment.Solve(w)
		if err != nil {
			return nil, fmt.Errorf("extend: matching subset %v: %w", subset, err)
		}

		for u := 0; u < k; u++ {
			for v := 0; v < k; v++ {
				gs, gd := subset[match[u]], subset[match[v]]
				pe, ge := p.Edges(u, v), work.Edges(gs, gd)
				if pe <= ge {
					continue
				}
				miss := pe - ge
				if err := work.AddEdges(gs, gd, miss); err != nil {
					return nil, fmt.Errorf("extend: applying deficit %d->%d: %w", gs, gd, err)
				}
				mergeMax(acc, edgeKey{src: gs, dst: gd}, work.Edges(gs, gd)-g.Edges(gs, gd))
			}
		}
		done++
	}

	return edgesOf(acc), nil
}
