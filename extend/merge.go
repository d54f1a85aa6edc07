package extend

import (
	"sort"

	"github.com/katalvlaran/subgraph/multigraph"
)

// edgeKey identifies an ordered vertex pair in a max-merge map. An explicit
// comparable key keeps the merge maps deterministic and cheap; the result
// is then ordered by sortEdges rather than map iteration.
type edgeKey struct {
	src, dst int
}

// mergeMax records that the pair needs at least count parallel edges,
// keeping the per-pair maximum, and returns how many edges this update
// added to the running total.
func mergeMax(acc map[edgeKey]uint8, key edgeKey, count uint8) int {
	cur := acc[key]
	if count <= cur {
		return 0
	}
	acc[key] = count

	return int(count - cur)
}

// edgesOf converts a max-merge map into an edge list sorted ascending by
// (source, destination).
func edgesOf(acc map[edgeKey]uint8) []multigraph.Edge {
	if len(acc) == 0 {
		return nil
	}
	edges := make([]multigraph.Edge, 0, len(acc))
	for key, count := range acc {
		edges = append(edges, multigraph.Edge{Source: key.src, Destination: key.dst, Count: count})
	}
	sortEdges(edges)

	return edges
}

// sortEdges orders an edge list ascending by (source, destination).
func sortEdges(edges []multigraph.Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}

		return edges[i].Destination < edges[j].Destination
	})
}
