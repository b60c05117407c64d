// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbatch/core"
)

// Common sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// edge is an (src, dst) pair used to describe fixtures compactly.
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

// triangle returns the directed 3-cycle 0→1→2→0 (edge ids 0,1,2).
func triangle(t testing.TB) *core.Graph {
	return mustGraph(t, 3, edge{0, 1}, edge{1, 2}, edge{2, 0})
}
