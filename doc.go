// Package subgraph solves the minimum multigraph extension problem: given
// a directed pattern multigraph P and a directed target multigraph G, find
// the smallest set of edge additions after which G contains n embeddings
// of P on pairwise distinct vertex subsets.
//
// 🚀 What is subgraph?
//
//	A library and CLI built from small, focused packages:
//		• multigraph/ — dense adjacency-matrix multigraphs, degrees, neighbors
//		• combin/     — lazy lexicographic permutation, combination and
//		  sequence enumerators with exact counting
//		• heuristic/  — six vertex-assignment cost-matrix families
//		• assignment/ — O(n³) Hungarian method for minimum-cost bijections
//		• extend/     — the solvers: exhaustive exact search plus two
//		  polynomial approximations (greedy seed growth, Hungarian
//		  assignment over vertex subsets)
//		• graphio/    — adjacency-matrix file format, pretty result tables
//		• cmd/subgraph — the command-line front end
//
// ✨ Why this shape?
//
//   - The search core performs no I/O and no logging; surfaces do
//   - Results are deterministic: same inputs, same edge list, sorted by
//     (source, destination)
//   - Overlapping embeddings share added edges per ordered pair (the cost
//     of a shared pair is the maximum requirement, never the sum)
//
// Quick example:
//
//	pattern, _ := multigraph.NewFromMatrix([][]uint8{{0, 1}, {0, 0}})
//	target, _ := multigraph.New(3)
//	edges, err := extend.Solve(pattern, target, 2, extend.DefaultOptions())
//	// edges now lists the additions making target contain two copies.
//
// See each package's doc.go for semantics, complexity and error contracts.
package subgraph
