package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbatch/graphio"
)

// execute runs the command tree with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(io.Discard)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	defer SetVersion("", "", "")

	if version != "1.0.0" || commit != "abc123" || date != "2024-01-01" {
		t.Errorf("SetVersion() = %q %q %q", version, commit, date)
	}
}

func TestMapIDsCommand(t *testing.T) {
	out, err := execute(t, "mapids", "--parent", "5,3,8,1", "--query", "8,1,9")
	require.NoError(t, err)
	assert.Equal(t, "[2,3,-1]\n", out)

	out, err = execute(t, "mapids", "--parent", "1,3,5,8", "--query", "8,1,9", "--strategy", "sorted", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "[3,0,-1]\n", out)

	_, err = execute(t, "mapids", "--parent", "1", "--strategy", "tree")
	assert.Error(t, err)
	_, err = execute(t, "mapids", "--parent", "3,1", "--strategy", "sorted")
	assert.Error(t, err)
}

func TestExpandCommand(t *testing.T) {
	out, err := execute(t, "expand", "--ids", "10,20,30", "--offset", "0,2,2,5")
	require.NoError(t, err)
	assert.Equal(t, "[10,10,30,30,30]\n", out)

	_, err = execute(t, "expand", "--ids", "1,2", "--offset", "0,1")
	assert.Error(t, err)
}

func TestGeneratePartitionUnion(t *testing.T) {
	dir := t.TempDir()
	batch := filepath.Join(dir, "batch.json")
	parts := filepath.Join(dir, "parts.json")

	_, err := execute(t, "generate", "cycle:3", "star:4", "-o", batch)
	require.NoError(t, err)

	_, err = execute(t, "partition", batch, "--sizes", "3,4", "-o", parts)
	require.NoError(t, err)

	f, err := os.Open(parts)
	require.NoError(t, err)
	defer f.Close()
	gs, err := graphio.ReadBatchJSON(f)
	require.NoError(t, err)
	require.Len(t, gs, 2)
	assert.Equal(t, int64(3), gs[0].NumEdges())
	assert.Equal(t, int64(3), gs[1].NumEdges())

	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, graphio.ExportGraph(gs[0], a))
	require.NoError(t, graphio.ExportGraph(gs[1], b))

	out, err := execute(t, "union", a, b)
	require.NoError(t, err)
	merged, err := graphio.ReadGraphJSON(strings.NewReader(out))
	require.NoError(t, err)
	original, err := graphio.ImportGraph(batch)
	require.NoError(t, err)
	assert.True(t, original.Equal(merged))

	_, err = execute(t, "partition", batch, "--num", "2")
	assert.Error(t, err, "7 vertices do not split into 2 equal parts")
	_, err = execute(t, "partition", batch)
	assert.Error(t, err, "one of --num and --sizes is required")
}

func TestLineGraphCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "g.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"num_vertices": 2, "edges": [[0, 1], [1, 0]]}`), 0o644))

	out, err := execute(t, "linegraph", in)
	require.NoError(t, err)
	lg, err := graphio.ReadGraphJSON(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, int64(2), lg.NumEdges())

	out, err = execute(t, "linegraph", in, "--backtracking=false")
	require.NoError(t, err)
	lg, err = graphio.ReadGraphJSON(strings.NewReader(out))
	require.NoError(t, err)
	assert.Zero(t, lg.NumEdges())
}

func TestRenderCommandDOT(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "g.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"num_vertices": 3, "edges": [[0, 1], [2, 2]]}`), 0o644))

	_, err := execute(t, "render", in, "--format", "dot", "--blocks", "2,1", "--labels")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "g.dot"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "subgraph cluster_1")
	assert.Contains(t, string(data), `2 -> 2 [label="1"]`)

	_, err = execute(t, "render", in, "--format", "png")
	assert.Error(t, err)
}
