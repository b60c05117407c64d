// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and edge-id lookups.
// Determinism:
//   - Edge ids are assigned in insertion order, starting from 0.
//   - adj[src] and radj[dst] keep insertion order as well.
// Concurrency:
//   - AddEdge holds the write lock for the whole insertion, so the three
//     storage views are never observed half-updated.

package core

import "fmt"

// AddEdge inserts the directed edge src→dst and returns its edge id, which
// equals the previous NumEdges(). Self-loops and parallel edges are accepted.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is outside [0, V).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dst int64) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertexLocked(src) {
		return -1, fmt.Errorf("AddEdge(%d→%d): src: %w", src, dst, ErrVertexNotFound)
	}
	if !g.hasVertexLocked(dst) {
		return -1, fmt.Errorf("AddEdge(%d→%d): dst: %w", src, dst, ErrVertexNotFound)
	}

	eid := int64(len(g.src))
	g.src = append(g.src, src)
	g.dst = append(g.dst, dst)

	fwd := &g.adj[src]
	fwd.Succ = append(fwd.Succ, dst)
	fwd.EdgeID = append(fwd.EdgeID, eid)

	rev := &g.radj[dst]
	rev.Succ = append(rev.Succ, src)
	rev.EdgeID = append(rev.EdgeID, eid)

	return eid, nil
}

// EdgeAt returns the endpoints of edge e.
//
// Errors:
//   - ErrEdgeNotFound if e is outside [0, E).
//
// Complexity: O(1).
func (g *Graph) EdgeAt(e int64) (src, dst int64, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if e < 0 || e >= int64(len(g.src)) {
		return -1, -1, fmt.Errorf("EdgeAt(%d): %w", e, ErrEdgeNotFound)
	}
	return g.src[e], g.dst[e], nil
}

// Edges returns copies of the flat edge list: src[e], dst[e] for every edge
// id e in ascending order.
// Complexity: O(E).
func (g *Graph) Edges() (src, dst []int64) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src = make([]int64, len(g.src))
	dst = make([]int64, len(g.dst))
	copy(src, g.src)
	copy(dst, g.dst)
	return src, dst
}
