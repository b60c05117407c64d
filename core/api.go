// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only counters and whole-graph summaries.
// Policy:
//   - No mutation here; every method takes the read lock.

package core

// NumVertices returns V.
// Complexity: O(1).
func (g *Graph) NumVertices() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return int64(len(g.adj))
}

// NumEdges returns E.
// Complexity: O(1).
func (g *Graph) NumEdges() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return int64(len(g.src))
}

// Stats returns vertex/edge counts, the number of self-loops and the largest
// out- and in-degree.
//
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{Vertices: int64(len(g.adj)), Edges: int64(len(g.src))}
	for e := range g.src {
		if g.src[e] == g.dst[e] {
			s.SelfLoops++
		}
	}
	for v := range g.adj {
		s.MaxOut = max(s.MaxOut, int64(g.adj[v].Len()))
		s.MaxIn = max(s.MaxIn, int64(g.radj[v].Len()))
	}
	return s
}
