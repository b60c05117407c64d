// SPDX-License-Identifier: MIT
// Package: lvbatch/csr
//
// csr.go — the CSR type, constructors and read accessors.
//
// Contract:
//   • New validates and takes ownership; NewBuilder allocates storage for (V, E).
//   • Accessors never expose internal backing arrays.

package csr

import (
	"fmt"
	"slices"
)

// CSR is an immutable compressed-sparse-row graph.
type CSR struct {
	indptr  []int64
	indices []int64
	edgeIDs []int64
}

// New validates the three arrays and wraps them without copying. The CSR
// takes ownership; callers must not modify the slices afterwards.
//
// Errors: ErrBadIndptr, ErrLengthMismatch, ErrVertexNotFound (an index
// outside [0, V)).
//
// Complexity: O(V + E).
func New(indptr, indices, edgeIDs []int64) (*CSR, error) {
	c := &CSR{indptr: indptr, indices: indices, edgeIDs: edgeIDs}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return c, nil
}

// NewBuilder allocates mutable storage for V vertices and E edges. All
// arrays are zero-filled except indptr[V] = E. Fill them in place and call
// Build.
//
// Errors: ErrNegativeCount.
func NewBuilder(numVertices, numEdges int64) (*Builder, error) {
	if numVertices < 0 || numEdges < 0 {
		return nil, fmt.Errorf("NewBuilder(%d, %d): %w", numVertices, numEdges, ErrNegativeCount)
	}
	b := &Builder{
		Indptr:  make([]int64, numVertices+1),
		Indices: make([]int64, numEdges),
		EdgeIDs: make([]int64, numEdges),
	}
	b.Indptr[numVertices] = numEdges
	return b, nil
}

// Builder exposes mutable CSR storage. Build validates it and freezes it into
// a CSR; the Builder must not be used after a successful Build.
type Builder struct {
	Indptr  []int64
	Indices []int64
	EdgeIDs []int64
}

// Build validates the builder's arrays and returns the CSR that owns them.
func (b *Builder) Build() (*CSR, error) {
	c, err := New(b.Indptr, b.Indices, b.EdgeIDs)
	if err != nil {
		return nil, err
	}
	b.Indptr, b.Indices, b.EdgeIDs = nil, nil, nil
	return c, nil
}

// NumVertices returns V.
func (c *CSR) NumVertices() int64 { return int64(len(c.indptr)) - 1 }

// NumEdges returns E.
func (c *CSR) NumEdges() int64 { return int64(len(c.indices)) }

// Indptr returns a copy of the offset array.
func (c *CSR) Indptr() []int64 { return slices.Clone(c.indptr) }

// Indices returns a copy of the neighbor array.
func (c *CSR) Indices() []int64 { return slices.Clone(c.indices) }

// EdgeIDs returns a copy of the edge-id array.
func (c *CSR) EdgeIDs() []int64 { return slices.Clone(c.edgeIDs) }

// Degree returns indptr[v+1] - indptr[v].
func (c *CSR) Degree(v int64) (int64, error) {
	if v < 0 || v >= c.NumVertices() {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}
	return c.indptr[v+1] - c.indptr[v], nil
}

// Neighbors returns a copy of indices[indptr[v]:indptr[v+1]].
func (c *CSR) Neighbors(v int64) ([]int64, error) {
	if v < 0 || v >= c.NumVertices() {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}
	return slices.Clone(c.indices[c.indptr[v]:c.indptr[v+1]]), nil
}

// EdgeIDsOf returns a copy of edgeIDs[indptr[v]:indptr[v+1]].
func (c *CSR) EdgeIDsOf(v int64) ([]int64, error) {
	if v < 0 || v >= c.NumVertices() {
		return nil, fmt.Errorf("EdgeIDsOf(%d): %w", v, ErrVertexNotFound)
	}
	return slices.Clone(c.edgeIDs[c.indptr[v]:c.indptr[v+1]]), nil
}

// Clone returns a deep copy.
func (c *CSR) Clone() *CSR {
	return &CSR{
		indptr:  slices.Clone(c.indptr),
		indices: slices.Clone(c.indices),
		edgeIDs: slices.Clone(c.edgeIDs),
	}
}

// Equal reports whether both CSRs hold identical arrays.
func (c *CSR) Equal(other *CSR) bool {
	if c == nil || other == nil {
		return c == other
	}
	return slices.Equal(c.indptr, other.indptr) &&
		slices.Equal(c.indices, other.indices) &&
		slices.Equal(c.edgeIDs, other.edgeIDs)
}

// Validate checks the layout invariants listed in the package doc.
// Complexity: O(V + E).
func (c *CSR) Validate() error {
	if len(c.indptr) == 0 {
		return fmt.Errorf("Validate: empty indptr: %w", ErrBadIndptr)
	}
	if c.indptr[0] != 0 {
		return fmt.Errorf("Validate: indptr[0]=%d: %w", c.indptr[0], ErrBadIndptr)
	}
	for i := 1; i < len(c.indptr); i++ {
		if c.indptr[i] < c.indptr[i-1] {
			return fmt.Errorf("Validate: indptr decreases at %d: %w", i, ErrBadIndptr)
		}
	}
	if len(c.indices) != len(c.edgeIDs) {
		return fmt.Errorf("Validate: %d indices vs %d edge ids: %w", len(c.indices), len(c.edgeIDs), ErrLengthMismatch)
	}
	nv := int64(len(c.indptr)) - 1
	if last := c.indptr[nv]; last != int64(len(c.indices)) {
		return fmt.Errorf("Validate: indptr[V]=%d vs E=%d: %w", last, len(c.indices), ErrBadIndptr)
	}
	for k, u := range c.indices {
		if u < 0 || u >= nv {
			return fmt.Errorf("Validate: indices[%d]=%d: %w", k, u, ErrVertexNotFound)
		}
	}
	return nil
}
