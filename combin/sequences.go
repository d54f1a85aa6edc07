package combin

// SequenceGenerator enumerates all base^length sequences of the given
// length over {0..base-1}, with repetition, in mixed-radix counter order.
// Repetition is what distinguishes it from CombinationGenerator: it lets
// multiple pattern copies reuse the same permutation rank while their
// target subsets stay distinct.
//
// length == 0 yields exactly one empty sequence (base^0 == 1); base == 0
// with length > 0 yields nothing.
type SequenceGenerator struct {
	base, length int
	seq          []int
	started      bool
	done         bool
}

// NewSequenceGenerator returns a generator over fixed-length sequences with
// digits in {0..base-1}.
func NewSequenceGenerator(base, length int) *SequenceGenerator {
	return &SequenceGenerator{base: base, length: length}
}

// Next advances the cursor to the next sequence, returning false once the
// sequence space is exhausted.
func (g *SequenceGenerator) Next() bool {
	if g.done {
		return false
	}
	if !g.started {
		g.started = true
		if g.length < 0 || (g.base <= 0 && g.length > 0) {
			g.done = true
			return false
		}
		g.seq = make([]int, g.length)

		return true
	}
	// Increment like a base-g.base counter, right to left with carry.
	for pos := g.length - 1; pos >= 0; pos-- {
		g.seq[pos]++
		if g.seq[pos] < g.base {
			return true
		}
		g.seq[pos] = 0
	}
	g.done = true

	return false
}

// Current returns the sequence at the cursor. The slice is a view into
// generator state: valid until the next Next or Reset call.
func (g *SequenceGenerator) Current() []int {
	return g.seq
}

// Reset rewinds the generator so the sequence regenerates from the start.
func (g *SequenceGenerator) Reset() {
	g.started = false
	g.done = false
	g.seq = nil
}
