package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbatch/core"
	"github.com/katalvlaran/lvbatch/csr"
	"github.com/katalvlaran/lvbatch/graphio"
	"github.com/katalvlaran/lvbatch/graphop"
	"github.com/katalvlaran/lvbatch/idarray"
)

func newUnionCmd() *cobra.Command {
	var (
		output  string
		csrMode bool
	)
	cmd := &cobra.Command{
		Use:   "union [file...]",
		Short: "Merge graphs into one disjoint batched graph",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if csrMode {
				return runUnionCSR(cmd.Context(), args, output, cmd.OutOrStdout())
			}
			g, err := unionGraphs(cmd.Context(), args)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return graphio.WriteGraphJSON(g, w)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&csrMode, "csr", false, "inputs and output are CSR documents")
	return cmd
}

func newPartitionCmd() *cobra.Command {
	var (
		output string
		num    int64
		sizes  []int64
	)
	cmd := &cobra.Command{
		Use:   "partition [file]",
		Short: "Split a batched graph into its parts",
		Long:  `Split a batched graph into consecutive vertex blocks, either --num equal blocks or blocks of the given --sizes. The output is a batch document.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := partitionGraph(cmd.Context(), args[0], num, sizes)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return graphio.WriteBatchJSON(parts, w)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().Int64Var(&num, "num", 0, "number of equal-sized parts")
	cmd.Flags().Int64SliceVar(&sizes, "sizes", nil, "vertex count of each part (comma-separated)")
	cmd.MarkFlagsMutuallyExclusive("num", "sizes")
	cmd.MarkFlagsOneRequired("num", "sizes")
	return cmd
}

func newLineGraphCmd() *cobra.Command {
	var (
		output       string
		backtracking bool
	)
	cmd := &cobra.Command{
		Use:   "linegraph [file]",
		Short: "Build the line graph of a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := lineGraph(cmd.Context(), args[0], backtracking)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return graphio.WriteGraphJSON(lg, w)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&backtracking, "backtracking", true, "connect u→v to the edges v→u that return to u")
	return cmd
}

// unionGraphs loads every input and merges them in argument order.
func unionGraphs(ctx context.Context, inputs []string) (*core.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	gs := make([]*core.Graph, len(inputs))
	for i, path := range inputs {
		g, err := graphio.ImportGraph(path)
		if err != nil {
			return nil, err
		}
		logger.Debugf("Loaded %s: %d vertices, %d edges", path, g.NumVertices(), g.NumEdges())
		gs[i] = g
	}

	u, err := graphop.DisjointUnion(gs)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Merged %d graphs: %d vertices, %d edges", len(gs), u.NumVertices(), u.NumEdges()))
	return u, nil
}

func runUnionCSR(ctx context.Context, inputs []string, output string, stdout io.Writer) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cs := make([]*csr.CSR, len(inputs))
	for i, path := range inputs {
		c, err := graphio.ImportCSR(path)
		if err != nil {
			return err
		}
		logger.Debugf("Loaded %s: %d vertices, %d edges", path, c.NumVertices(), c.NumEdges())
		cs[i] = c
	}

	u, err := graphop.DisjointUnionCSR(cs)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Merged %d CSR graphs: %d vertices, %d edges", len(cs), u.NumVertices(), u.NumEdges()))
	return writeOutput(stdout, output, func(w io.Writer) error {
		return graphio.WriteCSRJSON(u, w)
	})
}

// partitionGraph splits input by num equal blocks when sizes is empty, by
// sizes otherwise.
func partitionGraph(ctx context.Context, input string, num int64, sizes []int64) ([]*core.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := graphio.ImportGraph(input)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Loaded %s: %d vertices, %d edges", input, g.NumVertices(), g.NumEdges())

	var parts []*core.Graph
	if len(sizes) > 0 {
		parts, err = graphop.DisjointPartitionBySizes(g, idarray.FromSlice(sizes))
	} else {
		parts, err = graphop.DisjointPartitionByNum(g, num)
	}
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Partitioned %s into %d graphs", input, len(parts)))
	return parts, nil
}

func lineGraph(ctx context.Context, input string, backtracking bool) (*core.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := graphio.ImportGraph(input)
	if err != nil {
		return nil, err
	}
	lg, err := graphop.LineGraph(g, backtracking)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Line graph of %s: %d vertices, %d edges", input, lg.NumVertices(), lg.NumEdges()))
	return lg, nil
}
