// Package assignment solves the linear assignment problem: given a square
// matrix of non-negative costs, find the bijection from rows to columns
// minimizing the total assigned cost.
//
// The implementation is the O(n³) Hungarian algorithm in its row/column
// potential formulation. It is fully deterministic: equal-cost ties always
// resolve toward the lowest column index, so repeated runs over the same
// matrix return the identical bijection — a requirement of the search
// engine, whose results must be reproducible.
//
// Contract
//
//   - Input: non-nil square [][]float64 with finite, non-negative entries.
//   - Output: a complete bijection (assignment[row] = column) plus its
//     total cost. A 0×0 matrix yields an empty assignment.
//
// Errors
//
//   - ErrNonSquare    if any row length differs from the matrix side.
//   - ErrNegativeCost if an entry is negative.
//   - ErrNotFinite    if an entry is NaN or ±Inf.
//
// Complexity: O(n³) time, O(n) extra memory per phase.
package assignment
