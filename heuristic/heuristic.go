package heuristic

import (
	"math"

	"github.com/katalvlaran/subgraph/multigraph"
)

// WeightMatrix builds the k×k cost matrix for mapping pattern vertices onto
// the candidate subset of target vertices, using the selected heuristic.
// cost[i][j] estimates the penalty of mapping P vertex i to G vertex
// subset[j]; lower is better. The zero Type selects Default.
//
// subset must hold exactly p.VertexCount() valid g vertex indices; order
// matters (it is the combination the caller is currently considering).
func WeightMatrix(p, g *multigraph.Multigraph, subset []int, t Type) ([][]float64, error) {
	if len(subset) != p.VertexCount() {
		return nil, ErrBadSubset
	}
	for _, v := range subset {
		if v < 0 || v >= g.VertexCount() {
			return nil, ErrBadSubset
		}
	}
	if t == 0 {
		t = Default
	}

	switch t {
	case DegreeDifference:
		return degreeDifference(p, g, subset), nil
	case DirectedDegree:
		return directedDegree(p, g, subset, false), nil
	case DirectedDegreeDeficit:
		return directedDegree(p, g, subset, true), nil
	case NeighborHistogram:
		return neighborHistogram(p, g, subset), nil
	case StructureMatching:
		return structureMatching(p, g, subset), nil
	case GreedyNeighbor:
		return greedyNeighbor(p, g, subset), nil
	default:
		return nil, ErrUnknownType
	}
}

// newMatrix allocates a zeroed k×k cost matrix.
func newMatrix(k int) [][]float64 {
	m := make([][]float64, k)
	for i := range m {
		m[i] = make([]float64, k)
	}

	return m
}

// absDiff is |a−b| for int degrees, as a float64 cost.
func absDiff(a, b int) float64 {
	if a > b {
		return float64(a - b)
	}

	return float64(b - a)
}

// deficit is max(0, a−b): the shortfall of b against a.
func deficit(a, b int) float64 {
	if a > b {
		return float64(a - b)
	}

	return 0
}

// degreeDifference scores |totalDegree(P_i) − totalDegree(G_j)|.
func degreeDifference(p, g *multigraph.Multigraph, subset []int) [][]float64 {
	k := p.VertexCount()
	m := newMatrix(k)
	degP := p.Degrees()
	degG := g.Degrees()
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			m[i][j] = absDiff(degP[i], degG[subset[j]])
		}
	}

	return m
}

// directedDegree scores in- and out-degree mismatches separately. With
// deficitsOnly set, surplus target capacity is free and each term clamps at
// max(0, P−G).
func directedDegree(p, g *multigraph.Multigraph, subset []int, deficitsOnly bool) [][]float64 {
	k := p.VertexCount()
	m := newMatrix(k)
	inP, outP := p.InDegrees(), p.OutDegrees()
	inG, outG := g.InDegrees(), g.OutDegrees()
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			gv := subset[j]
			if deficitsOnly {
				m[i][j] = deficit(inP[i], inG[gv]) + deficit(outP[i], outG[gv])
			} else {
				m[i][j] = absDiff(inP[i], inG[gv]) + absDiff(outP[i], outG[gv])
			}
		}
	}

	return m
}

// neighborHistogram compares neighborhood shape: for each vertex, a
// histogram over its in+out neighbors, bucketed by the neighbor's total
// degree, each neighbor contributing its edge multiplicity to its bucket.
// The cost is the L1 (Manhattan) distance between the two histograms.
func neighborHistogram(p, g *multigraph.Multigraph, subset []int) [][]float64 {
	k := p.VertexCount()
	m := newMatrix(k)
	degP := p.Degrees()
	degG := g.Degrees()

	// Shared bucket range so the two histograms align.
	maxDeg := 0
	for _, d := range degP {
		maxDeg = max(maxDeg, d)
	}
	for _, d := range degG {
		maxDeg = max(maxDeg, d)
	}
	size := maxDeg + 1

	histogram := func(g *multigraph.Multigraph, v int, degrees []int) []int {
		h := make([]int, size)
		for _, nb := range g.Neighbors(v) {
			h[degrees[nb.Vertex]] += int(nb.Count)
		}

		return h
	}

	for i := 0; i < k; i++ {
		hp := histogram(p, i, degP)
		for j := 0; j < k; j++ {
			hg := histogram(g, subset[j], degG)
			dist := 0.0
			for s := 0; s < size; s++ {
				dist += absDiff(hp[s], hg[s])
			}
			m[i][j] = dist
		}
	}

	return m
}

// closedWalks counts, per vertex v, the directed triangles through v as the
// number of 2-step walks v→*→j over all j that close back with an edge
// j→v. Direct enumeration, O(V³).
func closedWalks(g *multigraph.Multigraph) []int {
	n := g.VertexCount()
	tri := make([]int, n)
	for v := 0; v < n; v++ {
		for j := 0; j < n; j++ {
			if g.Edges(j, v) == 0 {
				continue
			}
			walks := 0
			for m := 0; m < n; m++ {
				walks += int(g.Edges(v, m)) * int(g.Edges(m, j))
			}
			tri[v] += walks
		}
	}

	return tri
}

// structureMatching blends degree difference and triangle deficit with
// equal weights.
func structureMatching(p, g *multigraph.Multigraph, subset []int) [][]float64 {
	const alpha, beta = 0.5, 0.5
	k := p.VertexCount()
	m := newMatrix(k)
	degP := p.Degrees()
	degG := g.Degrees()
	triP := closedWalks(p)
	triG := closedWalks(g)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			gv := subset[j]
			m[i][j] = alpha*absDiff(degP[i], degG[gv]) + beta*deficit(triP[i], triG[gv])
		}
	}

	return m
}

// greedyNeighbor scores how well the out-neighborhoods of P_i and G_j can
// be paired: each P out-neighbor greedily takes its cheapest unused G
// out-neighbor by DegreeDifference cost; P neighbors left without a partner
// cost their own total degree, and so do leftover G neighbors. A cheap
// stand-in for exhaustively permuting the neighbor assignment.
func greedyNeighbor(p, g *multigraph.Multigraph, subset []int) [][]float64 {
	k := p.VertexCount()
	m := newMatrix(k)
	degP := p.Degrees()
	degG := g.Degrees()

	for i := 0; i < k; i++ {
		pn := p.OutNeighbors(i)
		for j := 0; j < k; j++ {
			gn := g.OutNeighbors(subset[j])
			used := make([]bool, len(gn))
			cost := 0.0
			for _, pnb := range pn {
				bestIdx, best := -1, math.Inf(1)
				for gi, gnb := range gn {
					if used[gi] {
						continue
					}
					if c := absDiff(degP[pnb.Vertex], degG[gnb.Vertex]); c < best {
						best, bestIdx = c, gi
					}
				}
				if bestIdx < 0 {
					// more P neighbors than G neighbors
					cost += float64(degP[pnb.Vertex])
					continue
				}
				used[bestIdx] = true
				cost += best
			}
			for gi, gnb := range gn {
				if !used[gi] {
					cost += float64(degG[gnb.Vertex])
				}
			}
			m[i][j] = cost
		}
	}

	return m
}
