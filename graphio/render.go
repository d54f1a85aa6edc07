package graphio

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/subgraph/multigraph"
)

// RenderGraph writes a titled summary of a graph followed by its matrix
// block.
func RenderGraph(w io.Writer, g *multigraph.Multigraph, title string) error {
	if _, err := fmt.Fprintf(w, "=== %s ===\nVertices: %d\nEdges: %d\n",
		title, g.VertexCount(), g.EdgeCount()); err != nil {
		return fmt.Errorf("graphio: %w", err)
	}

	return WriteMatrix(w, g)
}

// RenderExtension writes the edges to be added as a table with a total-cost
// footer. An empty extension renders a single line instead.
func RenderExtension(w io.Writer, edges []multigraph.Edge) error {
	if len(edges) == 0 {
		_, err := fmt.Fprintln(w, "No edges need to be added (pattern already exists in target graph).")
		if err != nil {
			return fmt.Errorf("graphio: %w", err)
		}

		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"source", "destination", "add"})
	for _, e := range edges {
		t.AppendRow(table.Row{e.Source, e.Destination, e.Count})
	}
	t.AppendFooter(table.Row{"total", "", multigraph.TotalCount(edges)})
	t.Render()

	return nil
}

// RenderResults writes the pattern, the target, the extension table, and
// the target with the extension applied.
func RenderResults(w io.Writer, pattern, target *multigraph.Multigraph, edges []multigraph.Edge) error {
	if err := RenderGraph(w, pattern, "Pattern Graph (P)"); err != nil {
		return err
	}
	if err := RenderGraph(w, target, "Target Graph (G)"); err != nil {
		return err
	}
	if err := RenderExtension(w, edges); err != nil {
		return err
	}

	extended, err := Apply(target, edges)
	if err != nil {
		return err
	}

	return RenderGraph(w, extended, "Modified Target Graph (after adding extension)")
}

// Apply returns a clone of g with every extension edge added.
func Apply(g *multigraph.Multigraph, edges []multigraph.Edge) (*multigraph.Multigraph, error) {
	out := g.Clone()
	for _, e := range edges {
		if err := out.AddEdges(e.Source, e.Destination, e.Count); err != nil {
			return nil, fmt.Errorf("graphio: applying %s: %w", e, err)
		}
	}

	return out, nil
}
