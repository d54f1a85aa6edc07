package heuristic

import "errors"

// Sentinel errors for weight-matrix construction.
var (
	// ErrUnknownType is returned for a Type value outside the defined set.
	ErrUnknownType = errors.New("heuristic: unknown heuristic type")

	// ErrBadSubset is returned when the candidate subset does not have
	// exactly one target vertex per pattern vertex, or indexes outside the
	// target's vertex range.
	ErrBadSubset = errors.New("heuristic: invalid candidate subset")
)

// Type selects one of the six cost-matrix heuristics.
type Type int

const (
	// DegreeDifference scores |totalDegree(P_i) − totalDegree(G_j)|.
	DegreeDifference Type = iota + 1

	// DirectedDegree scores in- and out-degree differences separately.
	DirectedDegree

	// DirectedDegreeDeficit scores only degree deficits; surplus target
	// capacity costs nothing.
	DirectedDegreeDeficit

	// NeighborHistogram scores the L1 distance between neighborhood
	// histograms bucketed by neighbor degree.
	NeighborHistogram

	// StructureMatching blends degree difference with a directed-triangle
	// deficit, equally weighted.
	StructureMatching

	// GreedyNeighbor greedily pairs out-neighborhoods by DegreeDifference
	// cost with penalties for unmatched neighbors.
	GreedyNeighbor
)

// Default is the heuristic used when callers leave Type unset.
const Default = DegreeDifference

// String returns the CLI-facing name of the heuristic.
func (t Type) String() string {
	switch t {
	case DegreeDifference:
		return "degree"
	case DirectedDegree:
		return "directed"
	case DirectedDegreeDeficit:
		return "directed_ignore"
	case NeighborHistogram:
		return "histogram"
	case StructureMatching:
		return "structure"
	case GreedyNeighbor:
		return "greedy"
	default:
		return "unknown"
	}
}

// ParseType maps a CLI-facing name back onto its Type.
func ParseType(s string) (Type, error) {
	for t := DegreeDifference; t <= GreedyNeighbor; t++ {
		if t.String() == s {
			return t, nil
		}
	}

	return 0, ErrUnknownType
}
