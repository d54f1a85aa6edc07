package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/subgraph/multigraph"
)

var (
	// ErrMissingSize is returned when no line with a positive leading
	// integer precedes a matrix block.
	ErrMissingSize = errors.New("graphio: missing or invalid matrix size")

	// ErrTruncated is returned when the input ends before the promised
	// number of rows or values.
	ErrTruncated = errors.New("graphio: truncated adjacency matrix")

	// ErrValueRange is returned for a multiplicity outside [0, 255].
	ErrValueRange = errors.New("graphio: edge multiplicity out of range")
)

// LoadMatrix reads one matrix block (size line, then size rows) from the
// scanner position and returns the graph it describes.
func LoadMatrix(sc *bufio.Scanner) (*multigraph.Multigraph, error) {
	n, err := readSize(sc)
	if err != nil {
		return nil, err
	}

	adj := make([][]uint8, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("row %d of %d: %w", i, n, ErrTruncated)
		}
		row, err := parseRow(sc.Text(), n)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		adj[i] = row
	}

	return multigraph.NewFromMatrix(adj)
}

// LoadPair reads two matrix blocks and returns them as (pattern, target):
// the lesser graph by vertex count, then edge count, is the pattern.
func LoadPair(r io.Reader) (pattern, target *multigraph.Multigraph, err error) {
	sc := bufio.NewScanner(r)

	first, err := LoadMatrix(sc)
	if err != nil {
		return nil, nil, fmt.Errorf("first graph: %w", err)
	}
	second, err := LoadMatrix(sc)
	if err != nil {
		return nil, nil, fmt.Errorf("second graph: %w", err)
	}

	if first.Less(second) {
		return first, second, nil
	}

	return second, first, nil
}

// LoadPairFile opens path and delegates to LoadPair.
func LoadPairFile(path string) (pattern, target *multigraph.Multigraph, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return LoadPair(f)
}

// readSize skips lines until one starts with a parseable integer, matching
// the tolerant historical format where blank lines and comments may precede
// a block.
func readSize(sc *bufio.Scanner) (int, error) {
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		if n <= 0 {
			return 0, fmt.Errorf("size %d: %w", n, ErrMissingSize)
		}

		return n, nil
	}

	return 0, ErrMissingSize
}

// parseRow parses exactly n space-separated multiplicities.
func parseRow(line string, n int) ([]uint8, error) {
	fields := strings.Fields(line)
	if len(fields) < n {
		return nil, fmt.Errorf("%d of %d values: %w", len(fields), n, ErrTruncated)
	}

	row := make([]uint8, n)
	for j := 0; j < n; j++ {
		v, err := strconv.Atoi(fields[j])
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", fields[j], ErrValueRange)
		}
		if v < 0 || v > int(multigraph.MaxMultiplicity) {
			return nil, fmt.Errorf("value %d: %w", v, ErrValueRange)
		}
		row[j] = uint8(v)
	}

	return row, nil
}
