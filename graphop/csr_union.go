// SPDX-License-Identifier: MIT
// Package: lvbatch/graphop
//
// csr_union.go — DisjointUnionCSR: prefix-array concatenation.
//
// Contract:
//   • indptr of input i is appended (minus its leading 0) shifted by the
//     edge count of the preceding inputs.
//   • indices are shifted by the preceding vertex count, edge ids by the
//     preceding edge count.

package graphop

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/csr"
)

// DisjointUnionCSR merges CSR graphs into one. An empty list yields the
// empty CSR (indptr = [0]).
//
// Errors:
//   - ErrNilGraph if any element is nil.
//
// Complexity: O(ΣV + ΣE).
func DisjointUnionCSR(graphs []*csr.CSR) (*csr.CSR, error) {
	var numNodes, numEdges int64
	for i, c := range graphs {
		if c == nil {
			return nil, fmt.Errorf("DisjointUnionCSR: graph %d: %w", i, ErrNilGraph)
		}
		numNodes += c.NumVertices()
		numEdges += c.NumEdges()
	}

	b, err := csr.NewBuilder(numNodes, numEdges)
	if err != nil {
		return nil, fmt.Errorf("DisjointUnionCSR: %w", err)
	}

	var cumNodes, cumEdges int64
	for _, c := range graphs {
		nv, ne := c.NumVertices(), c.NumEdges()
		for v, off := range c.Indptr()[1:] {
			b.Indptr[cumNodes+int64(v)+1] = off + cumEdges
		}
		for k, u := range c.Indices() {
			b.Indices[cumEdges+int64(k)] = u + cumNodes
		}
		for k, e := range c.EdgeIDs() {
			b.EdgeIDs[cumEdges+int64(k)] = e + cumEdges
		}
		cumNodes += nv
		cumEdges += ne
	}

	rst, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("DisjointUnionCSR: %v: %w", err, ErrInvariantViolation)
	}
	return rst, nil
}
