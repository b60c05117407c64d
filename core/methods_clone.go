// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy and structural equality.
// Concurrency:
//   - Read locks on the source; the clone is a fresh instance.

package core

import "slices"

// Clone returns a deep copy of g. No backing array is shared with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		adj:  make([]EdgeList, len(g.adj)),
		radj: make([]EdgeList, len(g.radj)),
		src:  slices.Clone(g.src),
		dst:  slices.Clone(g.dst),
	}
	for v := range g.adj {
		out.adj[v] = g.adj[v].clone()
		out.radj[v] = g.radj[v].clone()
	}
	return out
}

// Equal reports whether g and other have the same vertex count, the same
// flat edge list and the same per-vertex adjacency order.
//
// Complexity: O(V + E).
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g == other {
		return true
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	if len(g.adj) != len(other.adj) ||
		!slices.Equal(g.src, other.src) || !slices.Equal(g.dst, other.dst) {
		return false
	}
	for v := range g.adj {
		if !listEqual(g.adj[v], other.adj[v]) || !listEqual(g.radj[v], other.radj[v]) {
			return false
		}
	}
	return true
}

func listEqual(a, b EdgeList) bool {
	return slices.Equal(a.Succ, b.Succ) && slices.Equal(a.EdgeID, b.EdgeID)
}
