package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbatch/graphio"
)

// job is a transform described in a TOML file:
//
//	operation = "partition"
//	inputs    = ["batch.json"]
//	output    = "parts.json"
//	sizes     = [3, 2, 1]
//
// Relative paths are resolved against the job file's directory.
type job struct {
	Operation    string   `toml:"operation"`
	Inputs       []string `toml:"inputs"`
	Output       string   `toml:"output"`
	Num          int64    `toml:"num"`
	Sizes        []int64  `toml:"sizes"`
	Backtracking *bool    `toml:"backtracking"`
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [job.toml]",
		Short: "Run a transform described by a TOML job file",
		Long: `Run a transform described by a TOML job file. Keys:
  operation     union | partition | linegraph
  inputs        input graph files
  output        output file (default stdout)
  num, sizes    partition parameters
  backtracking  line graph parameter (default true)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := loadJob(args[0])
			if err != nil {
				return err
			}
			return runJob(cmd.Context(), j, cmd.OutOrStdout())
		},
	}
}

// loadJob decodes and checks a job file. Unknown keys are rejected.
func loadJob(path string) (*job, error) {
	var j job
	md, err := toml.DecodeFile(path, &j)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	base := filepath.Dir(path)
	for i, in := range j.Inputs {
		j.Inputs[i] = resolve(base, in)
	}
	if j.Output != "" {
		j.Output = resolve(base, j.Output)
	}
	if err := j.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &j, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func (j *job) validate() error {
	switch j.Operation {
	case "union":
		if len(j.Inputs) == 0 {
			return fmt.Errorf("job: union needs at least one input")
		}
	case "partition":
		if len(j.Inputs) != 1 {
			return fmt.Errorf("job: partition needs exactly one input, got %d", len(j.Inputs))
		}
		if (j.Num == 0) == (len(j.Sizes) == 0) {
			return fmt.Errorf("job: partition needs exactly one of num and sizes")
		}
	case "linegraph":
		if len(j.Inputs) != 1 {
			return fmt.Errorf("job: linegraph needs exactly one input, got %d", len(j.Inputs))
		}
	default:
		return fmt.Errorf("job: invalid operation: %q (must be 'union', 'partition' or 'linegraph')", j.Operation)
	}
	return nil
}

func runJob(ctx context.Context, j *job, stdout io.Writer) error {
	loggerFromContext(ctx).Debugf("Running %s job over %d inputs", j.Operation, len(j.Inputs))

	switch j.Operation {
	case "union":
		g, err := unionGraphs(ctx, j.Inputs)
		if err != nil {
			return err
		}
		return writeOutput(stdout, j.Output, func(w io.Writer) error {
			return graphio.WriteGraphJSON(g, w)
		})
	case "partition":
		parts, err := partitionGraph(ctx, j.Inputs[0], j.Num, j.Sizes)
		if err != nil {
			return err
		}
		return writeOutput(stdout, j.Output, func(w io.Writer) error {
			return graphio.WriteBatchJSON(parts, w)
		})
	default:
		backtracking := j.Backtracking == nil || *j.Backtracking
		lg, err := lineGraph(ctx, j.Inputs[0], backtracking)
		if err != nil {
			return err
		}
		return writeOutput(stdout, j.Output, func(w io.Writer) error {
			return graphio.WriteGraphJSON(lg, w)
		})
	}
}
