package multigraph

import "fmt"

// Edge is a required multiplicity increase: add Count parallel directed
// edges Source→Destination. Edges are produced by the search algorithms and
// never mutated after construction; equality is structural over all three
// fields (Go value comparison).
type Edge struct {
	Source      int
	Destination int
	Count       uint8
}

// String renders the edge in the "src->dst xN" form used by result output.
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d x%d", e.Source, e.Destination, e.Count)
}

// TotalCount sums the multiplicities of an edge list: the number of
// physical edge additions the list represents.
func TotalCount(edges []Edge) int {
	total := 0
	for _, e := range edges {
		total += int(e.Count)
	}

	return total
}
