package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/subgraph/multigraph"
)

// WriteMatrix writes one matrix block: the vertex count on its own line,
// then one row of space-separated multiplicities per vertex.
func WriteMatrix(w io.Writer, g *multigraph.Multigraph) error {
	bw := bufio.NewWriter(w)
	n := g.VertexCount()
	if _, err := fmt.Fprintln(bw, n); err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return fmt.Errorf("graphio: %w", err)
				}
			}
			if _, err := fmt.Fprintf(bw, "%d", g.Edges(i, j)); err != nil {
				return fmt.Errorf("graphio: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("graphio: %w", err)
		}
	}

	return bw.Flush()
}

// WritePair writes two matrix blocks back to back, the inverse of LoadPair.
func WritePair(w io.Writer, first, second *multigraph.Multigraph) error {
	if err := WriteMatrix(w, first); err != nil {
		return err
	}

	return WriteMatrix(w, second)
}

// WritePairFile creates path and delegates to WritePair.
func WritePairFile(path string, first, second *multigraph.Multigraph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err := WritePair(f, first, second); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
