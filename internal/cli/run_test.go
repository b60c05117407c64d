package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbatch/graphio"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunJob_Partition(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "batch.json", `{"num_vertices": 4, "edges": [[0, 1], [2, 3], [3, 2]]}`)
	jobPath := writeFile(t, dir, "job.toml", `
operation = "partition"
inputs    = ["batch.json"]
output    = "out/parts.json"
num       = 2
`)

	_, err := execute(t, "run", jobPath)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "out", "parts.json"))
	require.NoError(t, err)
	defer f.Close()
	parts, err := graphio.ReadBatchJSON(f)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, int64(1), parts[0].NumEdges())
	assert.Equal(t, int64(2), parts[1].NumEdges())
}

func TestRunJob_LineGraphDefaultsToBacktracking(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "g.json", `{"num_vertices": 2, "edges": [[0, 1], [1, 0]]}`)
	jobPath := writeFile(t, dir, "job.toml", `
operation = "linegraph"
inputs    = ["g.json"]
output    = "lg.json"
`)

	_, err := execute(t, "run", jobPath)
	require.NoError(t, err)
	lg, err := graphio.ImportGraph(filepath.Join(dir, "lg.json"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), lg.NumEdges())
}

func TestLoadJob_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "operation = \"union\"\ninputs = [\"a.json\"]\nspeed = 3\n"},
		{"unknown operation", "operation = \"merge\"\ninputs = [\"a.json\"]\n"},
		{"union without inputs", "operation = \"union\"\n"},
		{"partition with both", "operation = \"partition\"\ninputs = [\"a.json\"]\nnum = 2\nsizes = [1, 1]\n"},
		{"partition with neither", "operation = \"partition\"\ninputs = [\"a.json\"]\n"},
		{"linegraph two inputs", "operation = \"linegraph\"\ninputs = [\"a.json\", \"b.json\"]\n"},
		{"bad toml", "operation = \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "job.toml", tt.content)
			j, err := loadJob(path)
			assert.Error(t, err)
			assert.Nil(t, j)
		})
	}
}

func TestLoadJob_ResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "job.toml", "operation = \"union\"\ninputs = [\"a.json\", \"/abs/b.json\"]\noutput = \"u.json\"\n")

	j, err := loadJob(path)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.json"), "/abs/b.json"}, j.Inputs)
	assert.Equal(t, filepath.Join(dir, "u.json"), j.Output)
}
