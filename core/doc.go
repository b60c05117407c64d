// Package core provides the adjacency-list Graph consumed and produced by the
// lvbatch transforms.
//
// The Graph G = (V,E) is a directed multigraph over dense int64 ids:
//
//   - Vertices are 0..V-1, created in blocks with AddVertices(n).
//   - Edges are 0..E-1, assigned by AddEdge in insertion order.
//   - Parallel edges and self-loops are stored literally.
//
// Storage (three mutually consistent views of the same edge set):
//
//	adj[v]   = EdgeList{Succ: [w...], EdgeID: [e...]}   forward adjacency of v
//	radj[v]  = EdgeList{Succ: [u...], EdgeID: [e...]}   reverse adjacency of v
//	src[e], dst[e]                                      flat edge list by edge id
//
// Invariant: every edge id e appears exactly once in the flat list, exactly
// once in adj[src[e]] (paired with dst[e]) and exactly once in radj[dst[e]]
// (paired with src[e]). Validate checks it in O(V+E).
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph
//	AddVertices(n int64) error                 // O(n)
//	AddEdge(src, dst int64) (int64, error)     // O(1) amortized
//	Assemble(adj, radj, src, dst) (*Graph, error)
//
//	// Query
//	NumVertices(), NumEdges()                  // O(1)
//	OutList(v), InList(v)                      // O(deg), copies
//	Successors(v), Predecessors(v)             // O(deg), copies
//	OutDegree(v), InDegree(v)                  // O(1)
//	EdgeAt(e) (src, dst int64, err error)      // O(1)
//	Edges() (src, dst []int64)                 // O(E), copies
//
//	// Whole-graph
//	Clone() *Graph, Equal(*Graph) bool, Validate() error, Stats() Stats
//
// Concurrency:
//
//	A single sync.RWMutex guards all storage. Mutators take the write lock,
//	readers the read lock. Every slice returned to callers is a fresh copy, so
//	results stay valid after later mutations.
//
// Errors:
//
//	ErrVertexNotFound – vertex id outside [0, V)
//	ErrEdgeNotFound   – edge id outside [0, E)
//	ErrNegativeCount  – AddVertices with n < 0
//	ErrInconsistent   – adjacency and flat edge list disagree
package core
