// The subgraph command finds the smallest set of edge additions after which
// a target multigraph contains the requested number of copies of a pattern
// multigraph.
//
// Usage:
//
//	subgraph [flags] <input_graph_file>
//
// The input file holds two adjacency matrix blocks; the smaller graph is
// taken as the pattern.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/subgraph/extend"
	"github.com/katalvlaran/subgraph/graphio"
	"github.com/katalvlaran/subgraph/heuristic"
	"github.com/katalvlaran/subgraph/logger"
)

var app = cli.App{
	Name:      "subgraph",
	Usage:     "minimum multigraph extension search",
	ArgsUsage: "<input_graph_file>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "copies",
			Aliases: []string{"n"},
			Usage:   "number of pattern copies the target must contain",
			Value:   1,
		},
		&cli.StringFlag{
			Name:  "algo",
			Usage: "search algorithm (\"exact\", \"greedy\", \"assign\")",
			Value: extend.Exact.String(),
		},
		&cli.StringFlag{
			Name:  "heuristic",
			Usage: "cost heuristic for --algo assign (\"degree\", \"directed\", \"directed_ignore\", \"histogram\", \"structure\", \"greedy\")",
			Value: heuristic.Default.String(),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the extended target matrix to this file",
		},
		&logger.LogLevelFlag,
	},
	Action: run,
}

func run(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one input file, got %d arguments", ctx.NArg())
	}
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "subgraph")

	algo, err := extend.ParseAlgorithm(ctx.String("algo"))
	if err != nil {
		return fmt.Errorf("--algo %q: %w", ctx.String("algo"), err)
	}
	ht, err := heuristic.ParseType(ctx.String("heuristic"))
	if err != nil {
		return fmt.Errorf("--heuristic %q: %w", ctx.String("heuristic"), err)
	}
	copies := ctx.Int("copies")
	if copies < 0 {
		return fmt.Errorf("--copies %d: %w", copies, extend.ErrBadCopies)
	}

	input := ctx.Args().First()
	log.Noticef("loading graphs from %s", input)
	pattern, target, err := graphio.LoadPairFile(input)
	if err != nil {
		return err
	}
	log.Infof("pattern: %d vertices, %d edges; target: %d vertices, %d edges",
		pattern.VertexCount(), pattern.EdgeCount(), target.VertexCount(), target.EdgeCount())

	k := pattern.VertexCount()
	if target.CombinationsCount(k) < uint64(copies) {
		return fmt.Errorf("target graph cannot host %d copies of a %d-vertex pattern", copies, k)
	}

	log.Noticef("running %s search for %d copies", algo, copies)
	if algo == extend.Assignment {
		log.Infof("heuristic: %s", ht)
	}

	start := time.Now()
	edges, err := extend.Solve(pattern, target, copies, extend.Options{Algorithm: algo, Heuristic: ht})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := graphio.RenderResults(os.Stdout, pattern, target, edges); err != nil {
		return err
	}
	log.Noticef("execution time: %d ms", elapsed.Milliseconds())

	if out := ctx.String("output"); out != "" {
		extended, err := graphio.Apply(target, edges)
		if err != nil {
			return err
		}
		if err := graphio.WritePairFile(out, pattern, extended); err != nil {
			return err
		}
		log.Noticef("extended target written to %s", out)
	}

	return nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
