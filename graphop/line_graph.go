// SPDX-License-Identifier: MIT
// Package: lvbatch/graphop
//
// line_graph.go — LineGraph over the adjacency layout.
//
// Contract:
//   • Vertex i of the result is edge i of g.
//   • For e=(u,v) in edge-id order and each out-edge e'=(v,w) of v in v's
//     adjacency order, add e→e' unless backtracking is false and w == u.
//   • Self-loops and parallel edges are taken literally (no dedup).
//
// Complexity:
//   • Time:  O(E + Σ_e outdeg(dst(e))).
//   • Space: O(V + E) for the adjacency snapshot, plus the result.

package graphop

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/core"
)

// LineGraph returns the line graph of g. With backtracking=false an edge
// u→v is not connected to the edges v→u that immediately return to u.
func LineGraph(g *core.Graph, backtracking bool) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("LineGraph: %w", ErrNilGraph)
	}

	src, dst := g.Edges()
	out := make([]core.EdgeList, g.NumVertices())
	for v := range out {
		l, err := g.OutList(int64(v))
		if err != nil {
			return nil, fmt.Errorf("LineGraph: %w", err)
		}
		out[v] = l
	}

	lg := core.NewGraph()
	if err := lg.AddVertices(int64(len(src))); err != nil {
		return nil, fmt.Errorf("LineGraph: %w", err)
	}
	for e := range src {
		u, v := src[e], dst[e]
		next := out[v]
		for j, w := range next.Succ {
			if !backtracking && w == u {
				continue
			}
			if _, err := lg.AddEdge(int64(e), next.EdgeID[j]); err != nil {
				return nil, fmt.Errorf("LineGraph: edge %d→%d: %w", e, next.EdgeID[j], err)
			}
		}
	}
	return lg, nil
}
