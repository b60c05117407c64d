// SPDX-License-Identifier: MIT

package graphop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbatch/graphop"
)

func TestLineGraph_Cycle(t *testing.T) {
	g := mustGraph(t, 3, edge{0, 1}, edge{1, 2}, edge{2, 0})
	for _, backtracking := range []bool{true, false} {
		lg, err := graphop.LineGraph(g, backtracking)
		require.NoError(t, err)
		src, dst := lg.Edges()
		assert.Equal(t, int64(3), lg.NumVertices())
		assert.Equal(t, []int64{0, 1, 2}, src)
		assert.Equal(t, []int64{1, 2, 0}, dst)
	}
}

func TestLineGraph_Backtracking(t *testing.T) {
	// e0=(0,1) e1=(1,0) e2=(1,2)
	g := mustGraph(t, 3, edge{0, 1}, edge{1, 0}, edge{1, 2})

	lg, err := graphop.LineGraph(g, true)
	require.NoError(t, err)
	src, dst := lg.Edges()
	assert.Equal(t, []int64{0, 0, 1}, src)
	assert.Equal(t, []int64{1, 2, 0}, dst)

	lg, err = graphop.LineGraph(g, false)
	require.NoError(t, err)
	src, dst = lg.Edges()
	assert.Equal(t, []int64{0}, src)
	assert.Equal(t, []int64{2}, dst)
	require.NoError(t, lg.Validate())
}

func TestLineGraph_SelfLoopAndEmpty(t *testing.T) {
	g := mustGraph(t, 1, edge{0, 0})
	lg, err := graphop.LineGraph(g, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), lg.NumVertices())
	assert.Zero(t, lg.NumEdges(), "a self-loop returns to its own source")

	lg, err = graphop.LineGraph(g, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), lg.NumEdges())

	lg, err = graphop.LineGraph(mustGraph(t, 4), true)
	require.NoError(t, err)
	assert.Zero(t, lg.NumVertices())

	_, err = graphop.LineGraph(nil, true)
	assert.ErrorIs(t, err, graphop.ErrNilGraph)
}
