// SPDX-License-Identifier: MIT
// Package: lvbatch/csr
//
// errors.go — sentinel errors for CSR construction and access.

package csr

import "errors"

var (
	// ErrBadIndptr indicates the offset array is empty, does not start at 0,
	// decreases somewhere, or does not end at the edge count.
	ErrBadIndptr = errors.New("csr: invalid indptr")

	// ErrLengthMismatch indicates indices and edge ids disagree in length
	// with each other or with indptr[V].
	ErrLengthMismatch = errors.New("csr: length mismatch")

	// ErrVertexNotFound indicates a vertex id outside [0, V).
	ErrVertexNotFound = errors.New("csr: vertex not found")

	// ErrNegativeCount indicates a negative vertex or edge count.
	ErrNegativeCount = errors.New("csr: negative count")

	// ErrNilGraph indicates a nil graph was passed where one is required.
	ErrNilGraph = errors.New("csr: graph is nil")

	// ErrEdgeIDs indicates edge ids are not a permutation of 0..E-1.
	ErrEdgeIDs = errors.New("csr: edge ids are not a permutation")
)
