package extend

import (
	"math"
	"sort"

	"github.com/katalvlaran/subgraph/multigraph"
)

// seedConfig is one fully grown candidate mapping: every pattern vertex
// assigned a distinct target vertex, with the resulting per-pair edge
// deficits and their total.
type seedConfig struct {
	totalCost int
	mapping   []int     // pattern vertex → target vertex
	cost      [][]uint8 // V_G × V_G deficit matrix
}

// runGreedySeed grows one configuration per (pattern vertex, target
// vertex) seed pair, ranks all of them by total cost, accepts the cheapest
// vertex-disjoint ones, and max-merges the accepted deficit matrices.
//
// Disjointness is strict: a configuration is rejected if any of its mapped
// target vertices was already claimed by an accepted configuration. The
// historical same-subset-only variant would let copies overlap, which
// contradicts the vertex-distinctness the exact search enforces.
//
// Growth tie-breaking pulls every seed toward the lowest-index target
// vertices, so the first pass can collapse onto one vertex set and leave
// later copies unplaced. While copies remain and enough target vertices are
// free, the surviving seeds are re-grown with all claimed vertices blocked,
// forcing each further copy onto fresh vertices.
//
// Complexity: O(k·V_G · k·V_G·k) per growth pass, O(kV·log(kV)) for
// ranking.
func runGreedySeed(p, g *multigraph.Multigraph, copies int) []multigraph.Edge {
	k := p.VertexCount()
	vg := g.VertexCount()
	if copies <= 0 || k == 0 || k > vg {
		return nil
	}

	configs := make([]seedConfig, 0, k*vg)
	for u1 := 0; u1 < k; u1++ {
		for u2 := 0; u2 < vg; u2++ {
			configs = append(configs, growSeed(p, g, u1, u2, nil))
		}
	}
	sortByCost(configs)

	used := make([]bool, vg)
	final := make([][]uint8, vg)
	for i := range final {
		final[i] = make([]uint8, vg)
	}
	accepted := 0
	for ci := range configs {
		if accepted >= copies {
			break
		}
		cfg := &configs[ci]
		overlap := false
		for _, gv := range cfg.mapping {
			if used[gv] {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}
		acceptConfig(cfg, used, final)
		accepted++
	}

	// Re-grow onto the remaining free vertices until every copy is placed
	// or the target runs out of room.
	for accepted < copies && freeCount(used) >= k {
		best := regrowCheapest(p, g, used)
		acceptConfig(best, used, final)
		accepted++
	}

	var edges []multigraph.Edge
	for i := 0; i < vg; i++ {
		for j := 0; j < vg; j++ {
			if final[i][j] > 0 {
				edges = append(edges, multigraph.Edge{Source: i, Destination: j, Count: final[i][j]})
			}
		}
	}

	return edges
}

// sortByCost orders configurations ascending by total cost; stable keeps
// generation order on ties so the acceptance scan is deterministic.
func sortByCost(configs []seedConfig) {
	sort.SliceStable(configs, func(i, j int) bool {
		return configs[i].totalCost < configs[j].totalCost
	})
}

// acceptConfig claims the configuration's target vertices and max-merges
// its deficit matrix into the running result.
//
// Shared-edge insight: overlapping requirements cost the maximum, not the
// sum.
func acceptConfig(cfg *seedConfig, used []bool, final [][]uint8) {
	for _, gv := range cfg.mapping {
		used[gv] = true
	}
	for i := range final {
		for j := range final[i] {
			if cfg.cost[i][j] > final[i][j] {
				final[i][j] = cfg.cost[i][j]
			}
		}
	}
}

// freeCount returns how many target vertices are still unclaimed.
func freeCount(used []bool) int {
	n := 0
	for _, u := range used {
		if !u {
			n++
		}
	}

	return n
}

// regrowCheapest grows every (pattern vertex, free target vertex) seed with
// the claimed vertices blocked and returns the cheapest result. The caller
// guarantees at least k free vertices, so every regrown configuration is
// disjoint from the accepted set by construction.
func regrowCheapest(p, g *multigraph.Multigraph, used []bool) *seedConfig {
	k := p.VertexCount()
	vg := g.VertexCount()

	var best *seedConfig
	for u1 := 0; u1 < k; u1++ {
		for u2 := 0; u2 < vg; u2++ {
			if used[u2] {
				continue
			}
			cfg := growSeed(p, g, u1, u2, used)
			if best == nil || cfg.totalCost < best.totalCost {
				best = &cfg
			}
		}
	}

	return best
}

// growSeed extends the single seed pair (u1 ↦ u2) to a complete mapping:
// at every step the unmapped (pattern, target) pair with the smallest sum
// of bidirectional edge deficits against the already-mapped pairs is added.
// Ties resolve to the lowest vertex indices. Target vertices marked in
// blocked are never used; blocked may be nil.
func growSeed(p, g *multigraph.Multigraph, u1, u2 int, blocked []bool) seedConfig {
	k := p.VertexCount()
	vg := g.VertexCount()

	mapping := make([]int, k)
	for i := range mapping {
		mapping[i] = -1
	}
	usedG := make([]bool, vg)
	copy(usedG, blocked)
	mapping[u1] = u2
	usedG[u2] = true

	for mapped := 1; mapped < k; mapped++ {
		bestV1, bestV2, minCost := -1, -1, math.MaxInt
		for v1 := 0; v1 < k; v1++ {
			if mapping[v1] >= 0 {
				continue
			}
			for v2 := 0; v2 < vg; v2++ {
				if usedG[v2] {
					continue
				}
				cost := 0
				for m1 := 0; m1 < k; m1++ {
					m2 := mapping[m1]
					if m2 < 0 {
						continue
					}
					// Deficits in both directions against the mapped pair.
					if pe, ge := p.Edges(m1, v1), g.Edges(m2, v2); pe > ge {
						cost += int(pe - ge)
					}
					if pe, ge := p.Edges(v1, m1), g.Edges(v2, m2); pe > ge {
						cost += int(pe - ge)
					}
				}
				if cost < minCost {
					minCost, bestV1, bestV2 = cost, v1, v2
				}
			}
		}
		mapping[bestV1] = bestV2
		usedG[bestV2] = true
	}

	// Full deficit matrix and total for the completed mapping.
	cost := make([][]uint8, vg)
	for i := range cost {
		cost[i] = make([]uint8, vg)
	}
	total := 0
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			gi, gj := mapping[i], mapping[j]
			if pe, ge := p.Edges(i, j), g.Edges(gi, gj); pe > ge {
				cost[gi][gj] = pe - ge
				total += int(pe - ge)
			}
		}
	}

	return seedConfig{totalCost: total, mapping: mapping, cost: cost}
}
