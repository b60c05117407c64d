package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbatch/builder"
	"github.com/katalvlaran/lvbatch/graphio"
)

const defaultSeed = 42 // random seed for reproducible fixtures

func newGenerateCmd() *cobra.Command {
	var (
		output        string
		seed          int64
		bidirectional bool
		selfLoops     bool
	)
	cmd := &cobra.Command{
		Use:   "generate [shape...]",
		Short: "Generate a batched fixture graph",
		Long: `Generate a batched graph with one block per shape, in order. Shapes:
  cycle:N  path:N  star:N  wheel:N  complete:N
  bipartite:AxB  grid:RxC  random:N:P`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			cons := make([]builder.Constructor, len(args))
			for i, spec := range args {
				c, err := parseShape(spec)
				if err != nil {
					return err
				}
				cons[i] = c
			}

			opts := []builder.BuilderOption{builder.WithSeed(seed)}
			if bidirectional {
				opts = append(opts, builder.WithBidirectional())
			}
			if selfLoops {
				opts = append(opts, builder.WithSelfLoops())
			}
			g, sizes, err := builder.BuildBatch(opts, cons...)
			if err != nil {
				return err
			}
			logger.Debugf("Block sizes: %v", sizes.Data)
			prog.done(fmt.Sprintf("Generated %d blocks: %d vertices, %d edges", len(cons), g.NumVertices(), g.NumEdges()))

			return writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return graphio.WriteGraphJSON(g, w)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().Int64Var(&seed, "seed", defaultSeed, "random seed")
	cmd.Flags().BoolVar(&bidirectional, "bidirectional", false, "mirror every edge")
	cmd.Flags().BoolVar(&selfLoops, "self-loops", false, "allow self-loops in random blocks")
	return cmd
}

// parseShape turns "kind:args" into a constructor, e.g. "grid:2x3" or
// "random:30:0.1".
func parseShape(spec string) (builder.Constructor, error) {
	kind, rest, _ := strings.Cut(spec, ":")
	switch kind {
	case "cycle", "path", "star", "wheel", "complete":
		n, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", spec, err)
		}
		return map[string]func(int64) builder.Constructor{
			"cycle":    builder.Cycle,
			"path":     builder.Path,
			"star":     builder.Star,
			"wheel":    builder.Wheel,
			"complete": builder.Complete,
		}[kind](n), nil
	case "grid", "bipartite":
		as, bs, ok := strings.Cut(rest, "x")
		if !ok {
			return nil, fmt.Errorf("shape %q: want %s:AxB", spec, kind)
		}
		a, err := strconv.ParseInt(as, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", spec, err)
		}
		b, err := strconv.ParseInt(bs, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", spec, err)
		}
		if kind == "grid" {
			return builder.Grid(a, b), nil
		}
		return builder.CompleteBipartite(a, b), nil
	case "random":
		ns, ps, ok := strings.Cut(rest, ":")
		if !ok {
			return nil, fmt.Errorf("shape %q: want random:N:P", spec)
		}
		n, err := strconv.ParseInt(ns, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", spec, err)
		}
		p, err := strconv.ParseFloat(ps, 64)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", spec, err)
		}
		return builder.RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("unknown shape: %q", spec)
	}
}
