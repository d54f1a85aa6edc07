// Package multigraph provides the dense directed multigraph every search
// component operates over: a fixed vertex set {0..V-1} with an 8-bit
// parallel-edge counter per ordered vertex pair.
//
// What
//
//   - Square adjacency table adj[src][dst] holding the number of parallel
//     directed edges, bounded to [0,255].
//   - Cached total edge count, kept equal to the matrix sum at all times.
//   - Degree, neighbor and combinatorial-count queries used by the search
//     heuristics and enumerators.
//   - Value-style Clone so algorithms can maintain private mutable
//     snapshots.
//
// Why
//
// The extension search compares edge multiplicities across millions of
// candidate embeddings; a dense uint8 table gives O(1) multiplicity reads
// with minimal memory traffic, and the fixed shape means no structural
// invariants can drift mid-search.
//
// Mutation discipline
//
// The vertex set never changes after construction. The only mutation is
// AddEdges, which increments one cell and the cached count; it fails with
// ErrMultiplicityOverflow rather than wrapping the 8-bit counter.
//
// Errors
//
//   - ErrBadVertexCount  if a negative vertex count is requested.
//   - ErrNonSquare       if a prebuilt adjacency table is not square.
//   - ErrVertexOutOfRange on an AddEdges endpoint outside {0..V-1}.
//   - ErrMultiplicityOverflow if an addition would exceed 255 parallel edges.
//
// Complexity: reads are O(1); degree and neighbor queries are O(V);
// Clone is O(V²).
package multigraph
