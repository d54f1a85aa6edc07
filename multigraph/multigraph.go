package multigraph

import (
	"errors"

	"github.com/katalvlaran/subgraph/combin"
)

// Sentinel errors for multigraph construction and mutation.
var (
	// ErrBadVertexCount indicates a negative vertex count was requested.
	ErrBadVertexCount = errors.New("multigraph: vertex count must be non-negative")

	// ErrNonSquare indicates a prebuilt adjacency table whose rows do not
	// all match the table's side.
	ErrNonSquare = errors.New("multigraph: adjacency matrix is not square")

	// ErrVertexOutOfRange indicates an edge endpoint outside {0..V-1}.
	ErrVertexOutOfRange = errors.New("multigraph: vertex index out of range")

	// ErrMultiplicityOverflow indicates an edge addition that would exceed
	// the 8-bit parallel-edge bound of 255.
	ErrMultiplicityOverflow = errors.New("multigraph: edge multiplicity exceeds 255")
)

// MaxMultiplicity is the per-pair parallel-edge bound.
const MaxMultiplicity = 255

// Degree pairs the in- and out-degree of a vertex. Degrees count edge
// multiplicities, not distinct neighbors.
type Degree struct {
	In  int
	Out int
}

// Neighbor is one adjacency entry: a vertex and the multiplicity of the
// edges connecting it.
type Neighbor struct {
	Vertex int
	Count  uint8
}

// Multigraph is a directed multigraph over the fixed vertex set {0..V-1}
// with bounded per-pair edge multiplicity. The shape is immutable after
// construction; only edge counters change.
type Multigraph struct {
	vertexCount int
	edgeCount   int
	adj         [][]uint8
}

// New returns an edgeless multigraph on the given number of vertices.
func New(vertices int) (*Multigraph, error) {
	if vertices < 0 {
		return nil, ErrBadVertexCount
	}
	adj := make([][]uint8, vertices)
	for i := range adj {
		adj[i] = make([]uint8, vertices)
	}

	return &Multigraph{vertexCount: vertices, adj: adj}, nil
}

// NewFromMatrix constructs a multigraph around a deep copy of the given
// adjacency table; the edge count is recomputed from the matrix sum.
func NewFromMatrix(adj [][]uint8) (*Multigraph, error) {
	n := len(adj)
	g := &Multigraph{vertexCount: n, adj: make([][]uint8, n)}
	for i, row := range adj {
		if len(row) != n {
			return nil, ErrNonSquare
		}
		g.adj[i] = append([]uint8(nil), row...)
		for _, w := range row {
			g.edgeCount += int(w)
		}
	}

	return g, nil
}

// Clone returns an independent deep copy; algorithms use it to maintain
// private mutable working snapshots.
func (g *Multigraph) Clone() *Multigraph {
	c := &Multigraph{vertexCount: g.vertexCount, edgeCount: g.edgeCount, adj: make([][]uint8, g.vertexCount)}
	for i, row := range g.adj {
		c.adj[i] = append([]uint8(nil), row...)
	}

	return c
}

// AddEdges adds count parallel directed edges src→dst, keeping the cached
// edge count in sync. Returns ErrVertexOutOfRange for bad endpoints and
// ErrMultiplicityOverflow if the 8-bit counter would be exceeded.
func (g *Multigraph) AddEdges(src, dst int, count uint8) error {
	if src < 0 || src >= g.vertexCount || dst < 0 || dst >= g.vertexCount {
		return ErrVertexOutOfRange
	}
	if int(g.adj[src][dst])+int(count) > MaxMultiplicity {
		return ErrMultiplicityOverflow
	}
	g.adj[src][dst] += count
	g.edgeCount += int(count)

	return nil
}

// Edges returns the multiplicity of the directed edges src→dst.
func (g *Multigraph) Edges(src, dst int) uint8 {
	return g.adj[src][dst]
}

// VertexCount returns V.
func (g *Multigraph) VertexCount() int {
	return g.vertexCount
}

// EdgeCount returns the total multiplicity over all ordered pairs.
func (g *Multigraph) EdgeCount() int {
	return g.edgeCount
}

// InDegree returns the column sum for v.
func (g *Multigraph) InDegree(v int) int {
	d := 0
	for i := 0; i < g.vertexCount; i++ {
		d += int(g.adj[i][v])
	}

	return d
}

// OutDegree returns the row sum for v.
func (g *Multigraph) OutDegree(v int) int {
	d := 0
	for _, w := range g.adj[v] {
		d += int(w)
	}

	return d
}

// DegreeOf returns the (in, out) degree pair of v.
func (g *Multigraph) DegreeOf(v int) Degree {
	return Degree{In: g.InDegree(v), Out: g.OutDegree(v)}
}

// Degrees returns the total degree (in + out) of every vertex.
func (g *Multigraph) Degrees() []int {
	out := make([]int, g.vertexCount)
	for v := range out {
		out[v] = g.InDegree(v) + g.OutDegree(v)
	}

	return out
}

// InDegrees returns the in-degree of every vertex.
func (g *Multigraph) InDegrees() []int {
	out := make([]int, g.vertexCount)
	for v := range out {
		out[v] = g.InDegree(v)
	}

	return out
}

// OutDegrees returns the out-degree of every vertex.
func (g *Multigraph) OutDegrees() []int {
	out := make([]int, g.vertexCount)
	for v := range out {
		out[v] = g.OutDegree(v)
	}

	return out
}

// OutNeighbors returns the (vertex, multiplicity) pairs with a non-zero
// edge v→u, in ascending vertex order.
func (g *Multigraph) OutNeighbors(v int) []Neighbor {
	var ns []Neighbor
	for u, w := range g.adj[v] {
		if w > 0 {
			ns = append(ns, Neighbor{Vertex: u, Count: w})
		}
	}

	return ns
}

// InNeighbors returns the (vertex, multiplicity) pairs with a non-zero
// edge u→v, in ascending vertex order.
func (g *Multigraph) InNeighbors(v int) []Neighbor {
	var ns []Neighbor
	for u := 0; u < g.vertexCount; u++ {
		if w := g.adj[u][v]; w > 0 {
			ns = append(ns, Neighbor{Vertex: u, Count: w})
		}
	}

	return ns
}

// Neighbors returns the in+out neighborhood union of v in ascending vertex
// order, each neighbor carrying the summed multiplicity of both directions.
func (g *Multigraph) Neighbors(v int) []Neighbor {
	var ns []Neighbor
	for u := 0; u < g.vertexCount; u++ {
		total := int(g.adj[v][u]) + int(g.adj[u][v])
		if total > 0 {
			if total > MaxMultiplicity {
				total = MaxMultiplicity
			}
			ns = append(ns, Neighbor{Vertex: u, Count: uint8(total)})
		}
	}

	return ns
}

// Matrix returns a deep copy of the adjacency table.
func (g *Multigraph) Matrix() [][]uint8 {
	out := make([][]uint8, g.vertexCount)
	for i, row := range g.adj {
		out[i] = append([]uint8(nil), row...)
	}

	return out
}

// Permutations returns a generator over all orderings of this graph's
// vertex indices.
func (g *Multigraph) Permutations() *combin.PermutationGenerator {
	return combin.NewPermutationGenerator(g.vertexCount)
}

// Combinations returns a generator over all increasing k-subsets of this
// graph's vertex indices.
func (g *Multigraph) Combinations(k int) *combin.CombinationGenerator {
	return combin.NewCombinationGenerator(g.vertexCount, k)
}

// PermutationsCount returns V! (exact for V <= 20; see combin.Factorial).
func (g *Multigraph) PermutationsCount() uint64 {
	return combin.Factorial(g.vertexCount)
}

// CombinationsCount returns C(V, k).
func (g *Multigraph) CombinationsCount(k int) uint64 {
	return combin.Binomial(g.vertexCount, k)
}

// Less orders multigraphs by vertex count, then edge count. Loaders use it
// to canonicalize which of two graphs is the pattern (the smaller one).
func (g *Multigraph) Less(other *Multigraph) bool {
	if g.vertexCount != other.vertexCount {
		return g.vertexCount < other.vertexCount
	}

	return g.edgeCount < other.edgeCount
}
