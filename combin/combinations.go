package combin

// CombinationGenerator enumerates all C(n,k) strictly increasing k-subsets
// of {0..n-1} in lexicographic order.
//
// k <= 0 or k > n yields nothing: the search engine relies on that to turn
// degenerate selections into empty loops rather than faults.
type CombinationGenerator struct {
	n, k    int
	comb    []int
	started bool
	done    bool
}

// NewCombinationGenerator returns a generator over the k-subsets of
// {0..n-1}.
func NewCombinationGenerator(n, k int) *CombinationGenerator {
	return &CombinationGenerator{n: n, k: k}
}

// Next advances the cursor to the next combination, returning false once
// the sequence is exhausted.
func (g *CombinationGenerator) Next() bool {
	if g.done {
		return false
	}
	if !g.started {
		g.started = true
		if g.k <= 0 || g.k > g.n {
			g.done = true
			return false
		}
		g.comb = make([]int, g.k)
		for i := range g.comb {
			g.comb[i] = i
		}

		return true
	}
	if !g.advance() {
		g.done = true
		return false
	}

	return true
}

// Current returns the combination at the cursor, strictly increasing. The
// slice is a view into generator state: valid until the next Next or Reset.
func (g *CombinationGenerator) Current() []int {
	return g.comb
}

// Reset rewinds the generator so the sequence regenerates from the start.
func (g *CombinationGenerator) Reset() {
	g.started = false
	g.done = false
	g.comb = nil
}

// advance applies the standard transform: find the rightmost position that
// can still be incremented, bump it, and reset the suffix to the minimal
// increasing run above it.
func (g *CombinationGenerator) advance() bool {
	i := g.k - 1
	for i >= 0 && g.comb[i] == g.n-g.k+i {
		i--
	}
	if i < 0 {
		return false
	}
	g.comb[i]++
	for j := i + 1; j < g.k; j++ {
		g.comb[j] = g.comb[j-1] + 1
	}

	return true
}
