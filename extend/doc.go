// Package extend finds the smallest set of directed edge additions that
// make a target multigraph G contain n embeddings of a pattern multigraph
// P. An embedding maps P's k vertices injectively onto k target vertices so
// that every ordered pattern pair is covered by at least as many parallel
// target edges.
//
// It provides three algorithms behind one dispatcher:
//
//   - Exact — two-phase exhaustive search. Phase 1 precomputes, for every
//     (permutation of P vertices, k-combination of G vertices), the edges
//     that embedding would be missing. Phase 2 enumerates every choice of n
//     vertex-distinct combinations crossed with every length-n sequence of
//     permutations, merging the missing-edge lists per (source,destination)
//     by maximum multiplicity. Optimal; exponential. Practical for k ≲ 6-7
//     and small n.
//   - GreedySeed — grows one candidate mapping per (pattern vertex, target
//     vertex) seed pair by repeatedly adding the unmapped pair with the
//     smallest bidirectional edge deficit against the mapped set, then
//     accepts the cheapest vertex-disjoint configurations and max-merges
//     their cost matrices. Polynomial.
//   - Assignment — walks the first n k-combinations of target vertices; for
//     each, builds a heuristic cost matrix against a mutable working copy
//     of G, solves the assignment problem for the best bijection, and
//     commits the resulting deficits into the working copy so later copies
//     can reuse them. O(n·(V² + k³)) plus the heuristic cost.
//
// Edge sharing
//
// Two embeddings that both need edge (u,v), with different deficits, only
// require the larger deficit to be added: satisfying the bigger requirement
// satisfies the smaller one for free. The exact and greedy algorithms apply
// this as a per-edge max-merge over the chosen embeddings; the assignment
// algorithm gets the same effect by accumulating additions in its working
// copy.
//
// Determinism
//
// All three algorithms iterate in fixed ascending order, break ties toward
// the first candidate found, and return edge lists sorted by (source,
// destination). An empty result means no extension is needed.
//
// Degenerate inputs (an empty pattern, zero copies, or a pattern larger
// than the target) produce an empty extension. The caller is responsible
// for the precondition C(|V_G|, k) ≥ n; when it is violated the search runs
// out of vertex-distinct subsets and degrades to fewer (possibly zero)
// embeddings rather than failing.
package extend
