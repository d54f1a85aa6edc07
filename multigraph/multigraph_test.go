package multigraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subgraph/multigraph"
)

func TestNew(t *testing.T) {
	g, err := multigraph.New(3)
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, uint8(0), g.Edges(0, 2))

	_, err = multigraph.New(-1)
	require.ErrorIs(t, err, multigraph.ErrBadVertexCount)
}

func TestNewFromMatrix(t *testing.T) {
	g, err := multigraph.NewFromMatrix([][]uint8{
		{0, 2, 0},
		{1, 0, 3},
		{0, 0, 1},
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 7, g.EdgeCount()) // recomputed matrix sum
	require.Equal(t, uint8(3), g.Edges(1, 2))

	_, err = multigraph.NewFromMatrix([][]uint8{{0, 1}, {0}})
	require.ErrorIs(t, err, multigraph.ErrNonSquare)
}

func TestAddEdges(t *testing.T) {
	g, _ := multigraph.New(2)
	require.NoError(t, g.AddEdges(0, 1, 3))
	require.Equal(t, uint8(3), g.Edges(0, 1))
	require.Equal(t, 3, g.EdgeCount())

	require.ErrorIs(t, g.AddEdges(2, 0, 1), multigraph.ErrVertexOutOfRange)
	require.ErrorIs(t, g.AddEdges(0, -1, 1), multigraph.ErrVertexOutOfRange)
}

func TestAddEdges_Overflow(t *testing.T) {
	g, _ := multigraph.New(2)
	require.NoError(t, g.AddEdges(0, 1, 255))
	err := g.AddEdges(0, 1, 1)
	require.ErrorIs(t, err, multigraph.ErrMultiplicityOverflow)
	// counter and cache untouched on failure
	require.Equal(t, uint8(255), g.Edges(0, 1))
	require.Equal(t, 255, g.EdgeCount())
}

func TestDegrees(t *testing.T) {
	g, _ := multigraph.NewFromMatrix([][]uint8{
		{0, 2, 1},
		{0, 0, 0},
		{1, 0, 0},
	})
	require.Equal(t, 3, g.OutDegree(0))
	require.Equal(t, 1, g.InDegree(0))
	require.Equal(t, multigraph.Degree{In: 1, Out: 3}, g.DegreeOf(0))
	require.Equal(t, []int{4, 2, 2}, g.Degrees())
	require.Equal(t, []int{1, 2, 1}, g.InDegrees())
	require.Equal(t, []int{3, 0, 1}, g.OutDegrees())
}

func TestNeighbors(t *testing.T) {
	g, _ := multigraph.NewFromMatrix([][]uint8{
		{0, 2, 0},
		{1, 0, 0},
		{4, 0, 0},
	})
	require.Equal(t,
		[]multigraph.Neighbor{{Vertex: 1, Count: 2}},
		g.OutNeighbors(0))
	require.Equal(t,
		[]multigraph.Neighbor{{Vertex: 1, Count: 1}, {Vertex: 2, Count: 4}},
		g.InNeighbors(0))
	// combined neighborhood sums both directions
	require.Equal(t,
		[]multigraph.Neighbor{{Vertex: 1, Count: 3}, {Vertex: 2, Count: 4}},
		g.Neighbors(0))
	require.Nil(t, g.InNeighbors(2), "no incoming edges at 2")
}

func TestCounts(t *testing.T) {
	g, _ := multigraph.New(5)
	require.Equal(t, uint64(120), g.PermutationsCount())
	require.Equal(t, uint64(10), g.CombinationsCount(2))
	require.Equal(t, uint64(1), g.CombinationsCount(0))
	require.Equal(t, uint64(0), g.CombinationsCount(6))
}

func TestGenerators(t *testing.T) {
	g, _ := multigraph.New(3)
	n := 0
	for p := g.Permutations(); p.Next(); {
		n++
	}
	require.Equal(t, 6, n)
	n = 0
	for c := g.Combinations(2); c.Next(); {
		n++
	}
	require.Equal(t, 3, n)
}

func TestClone_Independence(t *testing.T) {
	g, _ := multigraph.New(2)
	require.NoError(t, g.AddEdges(0, 1, 1))
	c := g.Clone()
	require.NoError(t, c.AddEdges(1, 0, 2))
	require.Equal(t, uint8(0), g.Edges(1, 0))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 3, c.EdgeCount())
}

func TestLess(t *testing.T) {
	small, _ := multigraph.New(2)
	big, _ := multigraph.New(3)
	require.True(t, small.Less(big))
	require.False(t, big.Less(small))

	sparse, _ := multigraph.New(3)
	dense, _ := multigraph.New(3)
	require.NoError(t, dense.AddEdges(0, 1, 1))
	require.True(t, sparse.Less(dense))
	require.False(t, sparse.Less(sparse))
}

func TestEdge(t *testing.T) {
	e := multigraph.Edge{Source: 0, Destination: 1, Count: 2}
	require.Equal(t, "0->1 x2", e.String())
	require.True(t, e == multigraph.Edge{Source: 0, Destination: 1, Count: 2})
	require.Equal(t, 5, multigraph.TotalCount([]multigraph.Edge{
		e, {Source: 1, Destination: 0, Count: 3},
	}))
}
