package assignment_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subgraph/assignment"
)

func TestSolve_Known3x3(t *testing.T) {
	// Optimal total cross-checked against exhaustive enumeration.
	cost := [][]float64{
		{4, 2, 8},
		{3, 5, 7},
		{9, 6, 2},
	}
	got, total, err := assignment.Solve(cost)
	require.NoError(t, err)
	require.Equal(t, bruteForce(cost), total)
	require.Equal(t, total, costOf(cost, got))
	requireBijection(t, got)
}

func TestSolve_Identity(t *testing.T) {
	// Zero diagonal forces the identity bijection.
	cost := [][]float64{
		{0, 5, 5},
		{5, 0, 5},
		{5, 5, 0},
	}
	got, total, err := assignment.Solve(cost)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, got)
	require.Equal(t, 0.0, total)
}

func TestSolve_Deterministic(t *testing.T) {
	// All-equal costs: any bijection is optimal; the solver must always
	// return the same one.
	cost := [][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	first, _, err := assignment.Solve(cost)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, _, err := assignment.Solve(cost)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
	requireBijection(t, first)
}

func TestSolve_Exhaustive4x4(t *testing.T) {
	// Cross-check a handful of fixed matrices against brute force.
	matrices := [][][]float64{
		{
			{7, 5, 11, 8},
			{5, 4, 1, 9},
			{9, 3, 2, 7},
			{10, 9, 6, 2},
		},
		{
			{1, 2, 3, 4},
			{2, 4, 6, 8},
			{3, 6, 9, 12},
			{4, 8, 12, 16},
		},
	}
	for mi, cost := range matrices {
		got, total, err := assignment.Solve(cost)
		require.NoError(t, err, "matrix %d", mi)
		require.Equal(t, bruteForce(cost), total, "matrix %d", mi)
		require.Equal(t, total, costOf(cost, got), "matrix %d", mi)
		requireBijection(t, got)
	}
}

func TestSolve_Degenerate(t *testing.T) {
	got, total, err := assignment.Solve([][]float64{})
	require.NoError(t, err)
	require.Empty(t, got)
	require.Equal(t, 0.0, total)

	got, total, err = assignment.Solve([][]float64{{3}})
	require.NoError(t, err)
	require.Equal(t, []int{0}, got)
	require.Equal(t, 3.0, total)
}

func TestSolve_Validation(t *testing.T) {
	_, _, err := assignment.Solve([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, assignment.ErrNonSquare)

	_, _, err = assignment.Solve([][]float64{{1, -2}, {3, 4}})
	require.ErrorIs(t, err, assignment.ErrNegativeCost)

	_, _, err = assignment.Solve([][]float64{{1, math.Inf(1)}, {3, 4}})
	require.ErrorIs(t, err, assignment.ErrNotFinite)

	_, _, err = assignment.Solve([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, assignment.ErrNotFinite)
}

// costOf sums the assigned entries.
func costOf(cost [][]float64, assign []int) float64 {
	total := 0.0
	for i, j := range assign {
		total += cost[i][j]
	}

	return total
}

// requireBijection asserts assign maps rows onto distinct columns.
func requireBijection(t *testing.T, assign []int) {
	t.Helper()
	seen := make(map[int]bool, len(assign))
	for _, j := range assign {
		require.False(t, seen[j], "column %d assigned twice", j)
		seen[j] = true
		require.GreaterOrEqual(t, j, 0)
		require.Less(t, j, len(assign))
	}
}

// bruteForce finds the optimal total by trying every permutation.
func bruteForce(cost [][]float64) float64 {
	n := len(cost)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := math.Inf(1)
	var recurse func(i int)
	recurse = func(i int) {
		if i == n {
			total := 0.0
			for r, c := range perm {
				total += cost[r][c]
			}
			best = math.Min(best, total)
			return
		}
		for j := i; j < n; j++ {
			perm[i], perm[j] = perm[j], perm[i]
			recurse(i + 1)
			perm[i], perm[j] = perm[j], perm[i]
		}
	}
	recurse(0)

	return best
}
