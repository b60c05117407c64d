// SPDX-License-Identifier: MIT
// Package: lvbatch/graphop
//
// union.go — DisjointUnion over the adjacency layout.
//
// Contract:
//   • Input i occupies vertex ids [Σ_{j<i} V_j, Σ_{j≤i} V_j).
//   • Edges are re-inserted graph by graph, each in edge-id order, with both
//     endpoints shifted by the vertex count of the preceding inputs.
//   • V and E of the result are the sums over the inputs.

package graphop

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/core"
)

// DisjointUnion merges graphs into one batched graph. An empty list yields
// an empty graph.
//
// Errors:
//   - ErrNilGraph if any element is nil.
//
// Complexity: O(ΣV + ΣE).
func DisjointUnion(graphs []*core.Graph) (*core.Graph, error) {
	for i, g := range graphs {
		if g == nil {
			return nil, fmt.Errorf("DisjointUnion: graph %d: %w", i, ErrNilGraph)
		}
	}

	rst := core.NewGraph()
	var cumsum int64
	for i, g := range graphs {
		nv := g.NumVertices()
		src, dst := g.Edges()
		if err := rst.AddVertices(nv); err != nil {
			return nil, fmt.Errorf("DisjointUnion: graph %d: %w", i, err)
		}
		for e := range src {
			if _, err := rst.AddEdge(src[e]+cumsum, dst[e]+cumsum); err != nil {
				return nil, fmt.Errorf("DisjointUnion: graph %d edge %d: %w", i, e, err)
			}
		}
		cumsum += nv
	}
	return rst, nil
}
