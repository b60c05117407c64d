// SPDX-License-Identifier: MIT
// Package: lvbatch/csr
//
// convert.go — conversions between core.Graph and CSR.
//
// Determinism:
//   • FromGraph keeps each vertex's adjacency order, which is edge-id order.
//   • ToGraph re-inserts edges in ascending edge id, so edge ids survive.

package csr

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/core"
)

// Direction selects which adjacency a CSR row holds.
type Direction int

const (
	// Out rows are sources; indices are successors.
	Out Direction = iota
	// In rows are destinations; indices are predecessors.
	In
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == In {
		return "in"
	}
	return "out"
}

// FromGraph snapshots g into a CSR in the given direction. The CSR keeps
// g's edge ids.
//
// Errors: ErrNilGraph.
//
// Complexity: O(V + E).
func FromGraph(g *core.Graph, dir Direction) (*CSR, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGraph(%s): %w", dir, ErrNilGraph)
	}
	nv := g.NumVertices()
	indptr := make([]int64, nv+1)
	indices := make([]int64, 0, g.NumEdges())
	edgeIDs := make([]int64, 0, g.NumEdges())

	for v := int64(0); v < nv; v++ {
		var (
			l   core.EdgeList
			err error
		)
		if dir == In {
			l, err = g.InList(v)
		} else {
			l, err = g.OutList(v)
		}
		if err != nil {
			return nil, fmt.Errorf("FromGraph(%s): %w", dir, err)
		}
		indices = append(indices, l.Succ...)
		edgeIDs = append(edgeIDs, l.EdgeID...)
		indptr[v+1] = int64(len(indices))
	}
	return New(indptr, indices, edgeIDs)
}

// ToGraph expands c into an adjacency-list graph, reading rows according to
// dir. Edges are inserted in ascending edge id, so each edge keeps its id.
//
// Errors:
//   - ErrNilGraph on a nil receiver.
//   - ErrEdgeIDs if edge ids are not a permutation of 0..E-1.
//
// Complexity: O(V + E).
func (c *CSR) ToGraph(dir Direction) (*core.Graph, error) {
	if c == nil {
		return nil, fmt.Errorf("ToGraph(%s): %w", dir, ErrNilGraph)
	}
	ne := c.NumEdges()
	src := make([]int64, ne)
	dst := make([]int64, ne)
	seen := make([]bool, ne)

	for v := int64(0); v < c.NumVertices(); v++ {
		for k := c.indptr[v]; k < c.indptr[v+1]; k++ {
			e := c.edgeIDs[k]
			if e < 0 || e >= ne || seen[e] {
				return nil, fmt.Errorf("ToGraph: edge id %d at %d: %w", e, k, ErrEdgeIDs)
			}
			seen[e] = true
			if dir == In {
				src[e], dst[e] = c.indices[k], v
			} else {
				src[e], dst[e] = v, c.indices[k]
			}
		}
	}

	g := core.NewGraph()
	if err := g.AddVertices(c.NumVertices()); err != nil {
		return nil, fmt.Errorf("ToGraph: %w", err)
	}
	for e := int64(0); e < ne; e++ {
		if _, err := g.AddEdge(src[e], dst[e]); err != nil {
			return nil, fmt.Errorf("ToGraph: edge %d: %w", e, err)
		}
	}
	return g, nil
}
