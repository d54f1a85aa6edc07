// Package graphio reads and writes the textual adjacency-matrix format and
// renders graphs and extension results for human consumption.
//
// What:
//
//	A graph is a vertex count on its own line followed by that many rows of
//	space-separated multiplicities in [0, 255]. A pair file holds two such
//	blocks back to back; LoadPair returns the smaller graph (vertex count,
//	then edge count) as the pattern.
//
// Why:
//
//	The search core in package extend performs no I/O. Everything that
//	touches files, readers, or terminals lives here, so the solver stays
//	testable against in-memory graphs.
//
// Errors:
//
//	ErrMissingSize   - no parseable vertex count before the matrix
//	ErrTruncated     - fewer matrix rows or values than the size promised
//	ErrValueRange    - a multiplicity outside [0, 255]
//
// All load errors wrap one of the sentinels above; match with errors.Is.
package graphio
