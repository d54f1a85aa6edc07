package graphio_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subgraph/graphio"
	"github.com/katalvlaran/subgraph/multigraph"
)

const pairInput = `2
0 1
0 0
3
0 0 2
0 0 0
1 0 0
`

func TestLoadPair_SmallerBecomesPattern(t *testing.T) {
	pattern, target, err := graphio.LoadPair(strings.NewReader(pairInput))
	require.NoError(t, err)
	require.Equal(t, 2, pattern.VertexCount())
	require.Equal(t, 3, target.VertexCount())
	require.Equal(t, uint8(1), pattern.Edges(0, 1))
	require.Equal(t, uint8(2), target.Edges(0, 2))
}

func TestLoadPair_OrderIndependent(t *testing.T) {
	// Same two graphs with the larger one first.
	swapped := `3
0 0 2
0 0 0
1 0 0
2
0 1
0 0
`
	pattern, target, err := graphio.LoadPair(strings.NewReader(swapped))
	require.NoError(t, err)
	require.Equal(t, 2, pattern.VertexCount())
	require.Equal(t, 3, target.VertexCount())
}

func TestLoadPair_SkipsPreamble(t *testing.T) {
	input := "input graphs\n\n" + pairInput
	pattern, target, err := graphio.LoadPair(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, pattern.VertexCount())
	require.Equal(t, 3, target.VertexCount())
}

func TestLoadMatrix_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", graphio.ErrMissingSize},
		{"zero size", "0\n", graphio.ErrMissingSize},
		{"negative size", "-2\n", graphio.ErrMissingSize},
		{"missing rows", "3\n0 0 0\n", graphio.ErrTruncated},
		{"short row", "2\n0 1\n0\n", graphio.ErrTruncated},
		{"overflow value", "2\n0 256\n0 0\n", graphio.ErrValueRange},
		{"negative value", "2\n0 -1\n0 0\n", graphio.ErrValueRange},
		{"garbage value", "2\n0 x\n0 0\n", graphio.ErrValueRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := bufio.NewScanner(strings.NewReader(tc.input))
			_, err := graphio.LoadMatrix(sc)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWritePair_RoundTrip(t *testing.T) {
	pattern, target, err := graphio.LoadPair(strings.NewReader(pairInput))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, graphio.WritePair(&buf, pattern, target))

	p2, t2, err := graphio.LoadPair(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, pattern.Matrix(), p2.Matrix())
	require.Equal(t, target.Matrix(), t2.Matrix())
}

func TestApply(t *testing.T) {
	g, err := multigraph.New(3)
	require.NoError(t, err)
	out, err := graphio.Apply(g, []multigraph.Edge{
		{Source: 0, Destination: 1, Count: 2},
		{Source: 2, Destination: 0, Count: 1},
	})
	require.NoError(t, err)
	require.Equal(t, uint8(2), out.Edges(0, 1))
	require.Equal(t, uint8(1), out.Edges(2, 0))
	// The input graph is untouched.
	require.Equal(t, uint8(0), g.Edges(0, 1))
}

func TestApply_Overflow(t *testing.T) {
	g, err := multigraph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdges(0, 1, 255))

	_, err = graphio.Apply(g, []multigraph.Edge{{Source: 0, Destination: 1, Count: 1}})
	require.ErrorIs(t, err, multigraph.ErrMultiplicityOverflow)
}

func TestRenderExtension_Empty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, graphio.RenderExtension(&buf, nil))
	require.Contains(t, buf.String(), "No edges need to be added")
}

func TestRenderExtension_Table(t *testing.T) {
	var buf strings.Builder
	err := graphio.RenderExtension(&buf, []multigraph.Edge{
		{Source: 0, Destination: 1, Count: 2},
		{Source: 1, Destination: 2, Count: 1},
	})
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, "SOURCE")
	require.Contains(t, out, "TOTAL")
	require.Contains(t, out, "3")
}

func TestRenderResults(t *testing.T) {
	pattern, target, err := graphio.LoadPair(strings.NewReader(pairInput))
	require.NoError(t, err)

	var buf strings.Builder
	err = graphio.RenderResults(&buf, pattern, target, []multigraph.Edge{
		{Source: 0, Destination: 1, Count: 1},
	})
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, "Pattern Graph (P)")
	require.Contains(t, out, "Target Graph (G)")
	require.Contains(t, out, "Modified Target Graph")
}
