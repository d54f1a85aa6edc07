package extend

import (
	"math"

	"github.com/katalvlaran/subgraph/combin"
	"github.com/katalvlaran/subgraph/multigraph"
)

// maxTableCells bounds the missing-edge table: permutation ranks times
// combination ranks must stay indexable. Anything near this bound is far
// outside exhaustive reach regardless.
const maxTableCells = 1 << 32

// runExact performs the optimal two-phase search.
func runExact(p, g *multigraph.Multigraph, copies int) ([]multigraph.Edge, error) {
	table, err := missingEdgeTable(p, g)
	if err != nil {
		return nil, err
	}

	return minimalExtension(copies, table), nil
}

// missingEdgeTable precomputes, for every embedding (permutation rank,
// combination rank), the ordered list of edges the target is missing: for
// each ordered pattern pair (i,j), the deficit of G at the mapped pair
// (comb[i], comb[j]) against P at (perm[i], perm[j]).
//
// Complexity: O(C(|V_G|,k) · k! · k²) time and space.
func missingEdgeTable(p, g *multigraph.Multigraph) ([][][]multigraph.Edge, error) {
	k := p.VertexCount()
	perms64 := p.PermutationsCount()
	combs64 := g.CombinationsCount(k)
	if perms64 > maxTableCells || combs64 > maxTableCells ||
		(combs64 > 0 && perms64 > maxTableCells/combs64) {
		return nil, ErrSearchSpaceTooLarge
	}
	numCombs := int(combs64)

	table := make([][][]multigraph.Edge, 0, int(perms64))
	for pg := p.Permutations(); pg.Next(); {
		perm := pg.Current()
		row := make([][]multigraph.Edge, 0, numCombs)
		for cg := g.Combinations(k); cg.Next(); {
			comb := cg.Current()
			var missing []multigraph.Edge
			for i := 0; i < k; i++ {
				for j := 0; j < k; j++ {
					pe := p.Edges(perm[i], perm[j])
					ge := g.Edges(comb[i], comb[j])
					if pe > ge {
						missing = append(missing, multigraph.Edge{
							Source:      comb[i],
							Destination: comb[j],
							Count:       pe - ge,
						})
					}
				}
			}
			row = append(row, missing)
		}
		table = append(table, row)
	}

	return table, nil
}

// minimalExtension finds the cheapest way to place the required copies:
// every n-combination of combination ranks (forcing the copies onto
// distinct target subsets) crossed with every length-n sequence of
// permutation ranks (copies may reuse orderings). Each configuration's
// missing edges are max-merged per ordered pair; the globally smallest
// total wins, first found on ties.
func minimalExtension(copies int, table [][][]multigraph.Edge) []multigraph.Edge {
	numPerms := len(table)
	numCombs := 0
	if numPerms > 0 {
		numCombs = len(table[0])
	}

	best := math.MaxInt
	var bestEdges []multigraph.Edge
	acc := make(map[edgeKey]uint8)

	for combSel := combin.NewCombinationGenerator(numCombs, copies); combSel.Next(); {
		combs := combSel.Current()
		for permSel := combin.NewSequenceGenerator(numPerms, copies); permSel.Next(); {
			perms := permSel.Current()
			clear(acc)
			size := 0
			for c := 0; c < copies; c++ {
				for _, e := range table[perms[c]][combs[c]] {
					size += mergeMax(acc, edgeKey{e.Source, e.Destination}, e.Count)
				}
				// Abandon the configuration as soon as it cannot win.
				if size >= best {
					break
				}
			}
			if size < best {
				best = size
				bestEdges = edgesOf(acc)
			}
		}
	}

	return bestEdges
}
