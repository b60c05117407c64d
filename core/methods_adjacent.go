// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs over the forward and reverse adjacency.
// Determinism:
//   - Lists are returned in insertion order (which is edge-id order per vertex).
// Concurrency:
//   - Read lock only; results are independent copies.

package core

import "fmt"

// OutList returns a copy of v's forward adjacency: successors paired with the
// ids of the edges leading to them.
//
// Errors:
//   - ErrVertexNotFound if v is outside [0, V).
//
// Complexity: O(out-degree(v)).
func (g *Graph) OutList(v int64) (EdgeList, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return EdgeList{}, fmt.Errorf("OutList(%d): %w", v, ErrVertexNotFound)
	}
	return g.adj[v].clone(), nil
}

// InList returns a copy of v's reverse adjacency: predecessors paired with
// the ids of the edges coming from them.
//
// Errors:
//   - ErrVertexNotFound if v is outside [0, V).
//
// Complexity: O(in-degree(v)).
func (g *Graph) InList(v int64) (EdgeList, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return EdgeList{}, fmt.Errorf("InList(%d): %w", v, ErrVertexNotFound)
	}
	return g.radj[v].clone(), nil
}

// Successors returns the heads of v's out-edges in edge order. A vertex
// reached through parallel edges appears once per edge.
func (g *Graph) Successors(v int64) ([]int64, error) {
	l, err := g.OutList(v)
	if err != nil {
		return nil, err
	}
	return l.Succ, nil
}

// Predecessors returns the tails of v's in-edges in edge order.
func (g *Graph) Predecessors(v int64) ([]int64, error) {
	l, err := g.InList(v)
	if err != nil {
		return nil, err
	}
	return l.Succ, nil
}

// OutDegree returns the number of edges leaving v.
func (g *Graph) OutDegree(v int64) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return 0, fmt.Errorf("OutDegree(%d): %w", v, ErrVertexNotFound)
	}
	return int64(g.adj[v].Len()), nil
}

// InDegree returns the number of edges entering v.
func (g *Graph) InDegree(v int64) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return 0, fmt.Errorf("InDegree(%d): %w", v, ErrVertexNotFound)
	}
	return int64(g.radj[v].Len()), nil
}
