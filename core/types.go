// SPDX-License-Identifier: MIT

// Package core defines the adjacency-list Graph, its per-vertex EdgeList and
// the sentinel errors of the package.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex id outside [0, V).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge id outside [0, E).
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeCount indicates a negative vertex count was requested.
	ErrNegativeCount = errors.New("core: negative count")

	// ErrInconsistent indicates the adjacency lists and the flat edge list
	// do not describe the same edge set.
	ErrInconsistent = errors.New("core: adjacency and edge list are inconsistent")
)

// EdgeList is the ordered adjacency of one vertex: Succ[i] is the neighbor
// reached (or coming from, in the reverse view) through edge EdgeID[i].
// Succ and EdgeID always have the same length.
type EdgeList struct {
	Succ   []int64
	EdgeID []int64
}

// Len returns the number of (neighbor, edge) pairs.
func (l EdgeList) Len() int { return len(l.Succ) }

// clone returns an EdgeList with fresh backing arrays.
func (l EdgeList) clone() EdgeList {
	out := EdgeList{
		Succ:   make([]int64, len(l.Succ)),
		EdgeID: make([]int64, len(l.EdgeID)),
	}
	copy(out.Succ, l.Succ)
	copy(out.EdgeID, l.EdgeID)
	return out
}

// Graph is a directed multigraph over dense int64 vertex and edge ids.
//
// The zero value is an empty, ready-to-use graph.
type Graph struct {
	mu sync.RWMutex // guards everything below

	adj  []EdgeList // forward adjacency, indexed by vertex id
	radj []EdgeList // reverse adjacency, indexed by vertex id
	src  []int64    // src[e] for edge id e
	dst  []int64    // dst[e] for edge id e
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{}
}

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Vertices  int64
	Edges     int64
	SelfLoops int64
	MaxOut    int64
	MaxIn     int64
}
