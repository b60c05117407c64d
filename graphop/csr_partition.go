// SPDX-License-Identifier: MIT
// Package: lvbatch/graphop
//
// csr_partition.go — DisjointPartitionCSRBy{Num,Sizes}.
//
// For part i spanning vertices [cumsum[i], cumsum[i+1]):
//   • edge range  = [indptr[cumsum[i]], indptr[cumsum[i+1]])
//   • new indptr  = parent indptr over the range minus indptr[cumsum[i]]
//   • new indices = parent indices minus cumsum[i]
//   • new edgeIDs = parent edge ids minus the edges emitted so far
//
// Round trip: DisjointUnionCSR(parts) reproduces the parent exactly.

package graphop

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/csr"
	"github.com/katalvlaran/lvbatch/idarray"
)

const (
	opPartitionCSRByNum   = "DisjointPartitionCSRByNum"
	opPartitionCSRBySizes = "DisjointPartitionCSRBySizes"
)

// DisjointPartitionCSRByNum splits c into num CSRs of equal vertex count.
//
// Errors:
//   - ErrNilGraph, ErrIndivisiblePartition, plus those of DisjointPartitionCSRBySizes.
func DisjointPartitionCSRByNum(c *csr.CSR, num int64) ([]*csr.CSR, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: %w", opPartitionCSRByNum, ErrNilGraph)
	}
	sizes, err := equalSizes(opPartitionCSRByNum, c.NumVertices(), num)
	if err != nil {
		return nil, err
	}
	return DisjointPartitionCSRBySizes(c, sizes)
}

// DisjointPartitionCSRBySizes splits c into len(sizes) CSRs by consecutive
// vertex blocks.
//
// Errors:
//   - ErrNilGraph.
//   - ErrDimensionMismatch / ErrDeviceOrTypeMismatch if sizes fails the guard.
//   - ErrNegativeSize, ErrSizeSumMismatch.
//   - ErrInvariantViolation if a block references vertices or edge ids that
//     belong to another block.
//
// Complexity: O(V + E).
func DisjointPartitionCSRBySizes(c *csr.CSR, sizes *idarray.IdArray) ([]*csr.CSR, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: %w", opPartitionCSRBySizes, ErrNilGraph)
	}
	cumsum, err := resolveSizes(opPartitionCSRBySizes, c.NumVertices(), sizes)
	if err != nil {
		return nil, err
	}

	bgIndptr := c.Indptr()
	bgIndices := c.Indices()
	bgEdgeIDs := c.EdgeIDs()

	rst := make([]*csr.CSR, sizes.Len())
	var cumSumEdges int64
	for i, size := range sizes.Data {
		start, end := cumsum[i], cumsum[i+1]
		lo, hi := bgIndptr[start], bgIndptr[end]
		gNumEdges := hi - lo

		b, err := csr.NewBuilder(size, gNumEdges)
		if err != nil {
			return nil, fmt.Errorf("%s: part %d: %v: %w", opPartitionCSRBySizes, i, err, ErrInvariantViolation)
		}
		for l := start + 1; l <= end; l++ {
			b.Indptr[l-start] = bgIndptr[l] - lo
		}
		for k := lo; k < hi; k++ {
			u := bgIndices[k] - start
			e := bgEdgeIDs[k] - cumSumEdges
			if u < 0 || u >= size {
				return nil, fmt.Errorf("%s: part %d: neighbor %d outside block: %w",
					opPartitionCSRBySizes, i, bgIndices[k], ErrInvariantViolation)
			}
			if e < 0 || e >= gNumEdges {
				return nil, fmt.Errorf("%s: part %d: edge id %d outside window: %w",
					opPartitionCSRBySizes, i, bgEdgeIDs[k], ErrInvariantViolation)
			}
			b.Indices[k-lo] = u
			b.EdgeIDs[k-lo] = e
		}

		part, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("%s: part %d: %v: %w", opPartitionCSRBySizes, i, err, ErrInvariantViolation)
		}
		if part.NumVertices() != size || part.NumEdges() != gNumEdges {
			return nil, fmt.Errorf("%s: part %d: got V=%d E=%d, want V=%d E=%d: %w", opPartitionCSRBySizes, i,
				part.NumVertices(), part.NumEdges(), size, gNumEdges, ErrInvariantViolation)
		}
		rst[i] = part
		cumSumEdges += gNumEdges
	}
	return rst, nil
}
