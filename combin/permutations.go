package combin

// PermutationGenerator enumerates all n! permutations of {0..n-1} in
// lexicographic order, one at a time. The zero cursor sits before the first
// permutation; the first Next positions it on the identity.
//
// n == 0 yields exactly one empty permutation; n < 0 yields nothing.
type PermutationGenerator struct {
	n       int
	perm    []int
	started bool
	done    bool
}

// NewPermutationGenerator returns a generator over the permutations of
// {0..n-1}.
func NewPermutationGenerator(n int) *PermutationGenerator {
	return &PermutationGenerator{n: n}
}

// Next advances the cursor to the next permutation, returning false once the
// sequence is exhausted.
func (g *PermutationGenerator) Next() bool {
	if g.done {
		return false
	}
	if !g.started {
		g.started = true
		if g.n < 0 {
			g.done = true
			return false
		}
		g.perm = make([]int, g.n)
		for i := range g.perm {
			g.perm[i] = i
		}

		return true
	}
	if !nextPermutation(g.perm) {
		g.done = true
		return false
	}

	return true
}

// Current returns the permutation at the cursor. The slice is a view into
// generator state: valid until the next Next or Reset call.
func (g *PermutationGenerator) Current() []int {
	return g.perm
}

// Reset rewinds the generator so the sequence regenerates from the start.
func (g *PermutationGenerator) Reset() {
	g.started = false
	g.done = false
	g.perm = nil
}

// nextPermutation applies the standard lexicographic transform in place:
// locate the longest non-increasing suffix, swap its pivot with the smallest
// larger element to the right, then reverse the suffix. Returns false when p
// is the last (descending) permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
