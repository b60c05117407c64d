// SPDX-License-Identifier: MIT
// Package graphop_test holds fixtures shared by the transform tests.

package graphop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbatch/core"
	"github.com/katalvlaran/lvbatch/csr"
)

type edge struct{ u, v int64 }

// mustGraph builds a graph with n vertices and the given edges in order.
func mustGraph(t testing.TB, n int64, edges ...edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertices(n))
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v)
		require.NoError(t, err)
	}
	return g
}

// fixtures returns three small graphs with different shapes: a 3-cycle,
// a 2-path with a self-loop on its tail, and an isolated vertex.
func fixtures(t testing.TB) []*core.Graph {
	return []*core.Graph{
		mustGraph(t, 3, edge{0, 1}, edge{1, 2}, edge{2, 0}),
		mustGraph(t, 2, edge{0, 1}, edge{1, 1}),
		mustGraph(t, 1),
	}
}

func mustCSR(t testing.TB, g *core.Graph, dir csr.Direction) *csr.CSR {
	t.Helper()
	c, err := csr.FromGraph(g, dir)
	require.NoError(t, err)
	return c
}
