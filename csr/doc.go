// SPDX-License-Identifier: MIT

// Package csr provides the compressed-sparse-row graph consumed and produced
// by the lvbatch CSR transforms.
//
// Layout
//
//	indptr  : len V+1, non-decreasing, indptr[0] = 0, indptr[V] = E
//	indices : len E, neighbor ids; neighbors of v are indices[indptr[v]:indptr[v+1]]
//	edgeIDs : len E, edge id of each (v, indices[k]) entry
//
// A CSR does not say whether indices are successors or predecessors; the
// Direction passed to FromGraph/ToGraph fixes the reading. Batched graphs are
// usually kept as in-CSRs (rows are destinations, indices are sources).
//
// Ownership
//
//	New takes ownership of the slices it validates. Every accessor returns a
//	copy, so a CSR is immutable once built.
//
// Errors
//
//	ErrBadIndptr       - indptr shape, endpoints or monotonicity broken.
//	ErrLengthMismatch  - indices/edgeIDs length differs from indptr[V].
//	ErrVertexNotFound  - vertex id outside [0, V) (accessors and indices).
//	ErrNegativeCount   - NewBuilder with a negative V or E.
//	ErrEdgeIDs         - ToGraph needs edge ids forming a permutation of 0..E-1.
package csr
