package extend_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subgraph/extend"
	"github.com/katalvlaran/subgraph/heuristic"
	"github.com/katalvlaran/subgraph/multigraph"
)

func TestAssignment_SingleMissingEdge(t *testing.T) {
	p := mustGraph(t, [][]uint8{
		{0, 1},
		{0, 0},
	})
	g := emptyGraph(t, 2)

	edges, err := extend.Solve(p, g, 1, extend.Options{Algorithm: extend.Assignment})
	require.NoError(t, err)
	require.Equal(t, []multigraph.Edge{{Source: 0, Destination: 1, Count: 1}}, edges)
}

func TestAssignment_WorkingCopySharing(t *testing.T) {
	// Both copies land on the only two 2-subsets of a 3-vertex target that
	// exist first lexicographically: {0,1} then {0,2}. Edges committed for
	// the first subset are visible while scoring the second, so the
	// combined total stays at one edge per subset.
	p := mustGraph(t, [][]uint8{
		{0, 1},
		{0, 0},
	})
	g := emptyGraph(t, 3)

	edges, err := extend.Solve(p, g, 2, extend.Options{Algorithm: extend.Assignment})
	require.NoError(t, err)
	require.Equal(t, 2, multigraph.TotalCount(edges))
}

func TestAssignment_AlreadyContained(t *testing.T) {
	p := mustGraph(t, [][]uint8{
		{0, 1},
		{1, 0},
	})
	g := mustGraph(t, [][]uint8{
		{0, 1},
		{1, 0},
	})

	edges, err := extend.Solve(p, g, 1, extend.Options{Algorithm: extend.Assignment})
	require.NoError(t, err)
	require.Empty(t, edges)
}

func TestAssignment_AllHeuristics(t *testing.T) {
	p := mustGraph(t, [][]uint8{
		{0, 1, 1},
		{0, 0, 2},
		{0, 0, 0},
	})
	g := mustGraph(t, [][]uint8{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	// 4 edges in the pattern, 2 in the best possible pre-existing overlap.
	required := 4 - 2

	for ht := heuristic.DegreeDifference; ht <= heuristic.GreedyNeighbor; ht++ {
		edges, err := extend.Solve(p, g, 1, extend.Options{Algorithm: extend.Assignment, Heuristic: ht})
		require.NoError(t, err, "heuristic %s", ht)
		require.GreaterOrEqual(t, multigraph.TotalCount(edges), required, "heuristic %s", ht)
	}
}

func TestAssignment_ZeroValueHeuristicDefaults(t *testing.T) {
	p := mustGraph(t, [][]uint8{
		{0, 1},
		{0, 0},
	})
	g := emptyGraph(t, 2)

	// Options{} leaves Heuristic at its zero value, which must behave like
	// the explicit default.
	zero, err := extend.Solve(p, g, 1, extend.Options{Algorithm: extend.Assignment})
	require.NoError(t, err)
	explicit, err := extend.Solve(p, g, 1, extend.Options{
		Algorithm: extend.Assignment,
		Heuristic: heuristic.Default,
	})
	require.NoError(t, err)
	require.Equal(t, explicit, zero)
}
