package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbatch/graphop"
	"github.com/katalvlaran/lvbatch/idarray"
)

var strategies = map[string]graphop.Strategy{
	"auto":   graphop.StrategyAuto,
	"sorted": graphop.StrategySorted,
	"hashed": graphop.StrategyHashed,
}

func newMapIDsCmd() *cobra.Command {
	var (
		parent, query []int64
		strategy      string
		workers       int
	)
	cmd := &cobra.Command{
		Use:   "mapids",
		Short: "Print the position of each query id in the parent ids (-1 if absent)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := strategies[strategy]
			if !ok {
				return fmt.Errorf("invalid strategy: %s (must be 'auto', 'sorted' or 'hashed')", strategy)
			}
			if workers < 0 {
				return fmt.Errorf("invalid workers: %d (must be ≥ 0)", workers)
			}
			loggerFromContext(cmd.Context()).Debugf("Mapping %d ids against %d parents (%s)", len(query), len(parent), s)

			out, err := graphop.MapParentIDToSubgraphID(idarray.FromSlice(parent), idarray.FromSlice(query),
				graphop.WithStrategy(s), graphop.WithWorkers(workers))
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(out.Data)
		},
	}
	cmd.Flags().Int64SliceVar(&parent, "parent", nil, "parent ids (comma-separated)")
	cmd.Flags().Int64SliceVar(&query, "query", nil, "query ids (comma-separated)")
	cmd.Flags().StringVar(&strategy, "strategy", "auto", "lookup strategy: auto (default), sorted, hashed")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("parent")
	return cmd
}

func newExpandCmd() *cobra.Command {
	var ids, offset []int64
	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Repeat ids[i] offset[i+1]-offset[i] times",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := graphop.ExpandIDs(idarray.FromSlice(ids), idarray.FromSlice(offset))
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(out.Data)
		},
	}
	cmd.Flags().Int64SliceVar(&ids, "ids", nil, "ids (comma-separated)")
	cmd.Flags().Int64SliceVar(&offset, "offset", nil, "offsets, one more than ids (comma-separated)")
	_ = cmd.MarkFlagRequired("offset")
	return cmd
}
