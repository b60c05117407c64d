// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle (block allocation) and membership.
// Determinism:
//   - New vertices always take the next ids in sequence.

package core

import "fmt"

// AddVertices appends n isolated vertices with ids V..V+n-1.
// n == 0 is a no-op.
//
// Errors:
//   - ErrNegativeCount if n < 0.
//
// Complexity: O(n).
func (g *Graph) AddVertices(n int64) error {
	if n < 0 {
		return fmt.Errorf("AddVertices(%d): %w", n, ErrNegativeCount)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = append(g.adj, make([]EdgeList, n)...)
	g.radj = append(g.radj, make([]EdgeList, n)...)
	return nil
}

// HasVertex reports whether v is a vertex id of g.
// Complexity: O(1).
func (g *Graph) HasVertex(v int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertexLocked(v)
}

// hasVertexLocked is HasVertex for callers already holding a lock.
func (g *Graph) hasVertexLocked(v int64) bool {
	return v >= 0 && v < int64(len(g.adj))
}
