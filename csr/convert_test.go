// SPDX-License-Identifier: MIT
package csr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbatch/core"
	"github.com/katalvlaran/lvbatch/csr"
)

func cycleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertices(3))
	for _, e := range [][2]int64{{0, 1}, {1, 2}, {2, 0}, {0, 2}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	return g
}

func TestFromGraph_Directions(t *testing.T) {
	g := cycleGraph(t)

	out, err := csr.FromGraph(g, csr.Out)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 2, 3, 4}, out.Indptr())
	require.Equal(t, []int64{1, 2, 2, 0}, out.Indices())
	require.Equal(t, []int64{0, 3, 1, 2}, out.EdgeIDs())

	in, err := csr.FromGraph(g, csr.In)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2, 4}, in.Indptr())
	require.Equal(t, []int64{2, 0, 1, 0}, in.Indices())
	require.Equal(t, []int64{2, 0, 1, 3}, in.EdgeIDs())
}

// TestToGraph_RoundTrip checks both directions reproduce the source graph.
func TestToGraph_RoundTrip(t *testing.T) {
	g := cycleGraph(t)
	for _, dir := range []csr.Direction{csr.Out, csr.In} {
		t.Run(dir.String(), func(t *testing.T) {
			c, err := csr.FromGraph(g, dir)
			require.NoError(t, err)
			back, err := c.ToGraph(dir)
			require.NoError(t, err)
			require.True(t, g.Equal(back))
			require.NoError(t, back.Validate())
		})
	}
}

func TestToGraph_RejectsBadEdgeIDs(t *testing.T) {
	dup, err := csr.New([]int64{0, 2}, []int64{0, 0}, []int64{1, 1})
	require.NoError(t, err)
	_, err = dup.ToGraph(csr.Out)
	require.ErrorIs(t, err, csr.ErrEdgeIDs)

	outOfRange, err := csr.New([]int64{0, 1}, []int64{0}, []int64{4})
	require.NoError(t, err)
	_, err = outOfRange.ToGraph(csr.In)
	require.ErrorIs(t, err, csr.ErrEdgeIDs)
}

func TestConvert_NilGraph(t *testing.T) {
	c, err := csr.FromGraph(nil, csr.Out)
	require.ErrorIs(t, err, csr.ErrNilGraph)
	require.Nil(t, c)

	var none *csr.CSR
	g, err := none.ToGraph(csr.In)
	require.ErrorIs(t, err, csr.ErrNilGraph)
	require.Nil(t, g)
}
