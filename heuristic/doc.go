// Package heuristic provides the family of vertex-dissimilarity cost
// matrices that drive the assignment-based approximate search.
//
// Each heuristic scores how badly pattern vertex i would fit onto candidate
// target vertex subset[j], producing a k×k matrix of non-negative costs
// (lower is better) that the assignment solver turns into a bijection.
//
// The six heuristics, cheapest to richest:
//
//   - DegreeDifference       |deg(P_i) − deg(G_j)| on total degrees.
//   - DirectedDegree         in- and out-degree differences summed.
//   - DirectedDegreeDeficit  as above, but surplus capacity in G is free:
//     each term is clamped at max(0, P−G).
//   - NeighborHistogram      L1 distance between neighborhood histograms
//     bucketed by neighbor degree, each neighbor weighted by its edge
//     multiplicity.
//   - StructureMatching      0.5·degree difference + 0.5·triangle deficit,
//     triangles counted by direct 2-hop walk enumeration.
//   - GreedyNeighbor         greedy cheapest pairing of out-neighborhoods
//     by DegreeDifference cost, with degree penalties for unmatched
//     neighbors on either side.
//
// WeightMatrix dispatches on a Type tag; the zero Type selects
// DegreeDifference. Matrices are built fresh per call against the graphs as
// they currently stand, which is what lets the assignment search feed its
// mutable working copy back into later iterations.
//
// Complexity: heuristics 1-3 are O(V² + k²); 4 is O(V² + k·V); 5 is O(V³);
// 6 is O(k²·d²) for max out-neighborhood size d.
package heuristic
