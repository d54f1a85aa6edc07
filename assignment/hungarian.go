package assignment

import (
	"errors"
	"math"
)

// Sentinel errors for cost-matrix validation.
var (
	// ErrNonSquare is returned when a row length differs from the side.
	ErrNonSquare = errors.New("assignment: cost matrix is not square")

	// ErrNegativeCost is returned when an entry is negative.
	ErrNegativeCost = errors.New("assignment: negative cost entry")

	// ErrNotFinite is returned when an entry is NaN or infinite.
	ErrNotFinite = errors.New("assignment: NaN or Inf cost entry")
)

// Solve returns the minimum-cost complete bijection for the given square
// cost matrix as assignment[row] = column, together with the total cost of
// that bijection.
//
// Hungarian algorithm with row/column potentials: rows are inserted one at
// a time; each insertion grows an alternating tree of tight edges until a
// free column is reached, then augments along the recorded path. Potentials
// keep reduced costs non-negative, so every augmentation is optimal.
//
// Complexity: O(n³).
func Solve(cost [][]float64) ([]int, float64, error) {
	n := len(cost)
	for _, row := range cost {
		if len(row) != n {
			return nil, 0, ErrNonSquare
		}
		for _, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, 0, ErrNotFinite
			}
			if c < 0 {
				return nil, 0, ErrNegativeCost
			}
		}
	}
	if n == 0 {
		return []int{}, 0, nil
	}

	// 1-based potentials and matching; index 0 is the virtual root column.
	u := make([]float64, n+1) // row potentials
	v := make([]float64, n+1) // column potentials
	p := make([]int, n+1)     // p[col] = row matched to col (0 = free)
	way := make([]int, n+1)   // predecessor column on the alternating path

	minv := make([]float64, n+1)
	used := make([]bool, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := 0; j <= n; j++ {
			minv[j] = math.Inf(1)
			used[j] = false
		}

		// Grow the alternating tree until an unmatched column is reached.
		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			// Shift potentials so at least one new edge becomes tight.
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Augment along the recorded path back to the root.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	result := make([]int, n)
	total := 0.0
	for j := 1; j <= n; j++ {
		result[p[j]-1] = j - 1
		total += cost[p[j]-1][j-1]
	}

	return result, total, nil
}
