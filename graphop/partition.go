// SPDX-License-Identifier: MIT
// Package: lvbatch/graphop
//
// partition.go — DisjointPartitionBy{Num,Sizes} over the adjacency layout.
//
// Algorithm (running nodeOffset/edgeOffset):
//   1. Copy forward and reverse lists of vertices [nodeOffset, nodeOffset+s).
//   2. numEdges = Σ out-degree over that range.
//   3. Rebase every neighbor by nodeOffset and every edge id by edgeOffset.
//   4. Copy the flat-edge window [edgeOffset, edgeOffset+numEdges), rebased.
//   5. Check the piece, then advance both offsets.
//
// Precondition exploited: edges owned by a vertex block form one contiguous
// window of the flat list, as produced by DisjointUnion. Any breach surfaces
// as ErrInvariantViolation; nothing is returned in that case.

package graphop

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/core"
	"github.com/katalvlaran/lvbatch/idarray"
)

const (
	opPartitionByNum   = "DisjointPartitionByNum"
	opPartitionBySizes = "DisjointPartitionBySizes"
)

// DisjointPartitionByNum splits g into num graphs of equal vertex count.
//
// Errors:
//   - ErrNilGraph, ErrIndivisiblePartition, plus those of DisjointPartitionBySizes.
func DisjointPartitionByNum(g *core.Graph, num int64) ([]*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opPartitionByNum, ErrNilGraph)
	}
	sizes, err := equalSizes(opPartitionByNum, g.NumVertices(), num)
	if err != nil {
		return nil, err
	}
	return DisjointPartitionBySizes(g, sizes)
}

// DisjointPartitionBySizes splits g into len(sizes) graphs; graph i receives
// the next sizes[i] vertices together with their edges, renumbered from 0.
//
// Errors:
//   - ErrNilGraph.
//   - ErrDimensionMismatch / ErrDeviceOrTypeMismatch if sizes fails the guard.
//   - ErrNegativeSize, ErrSizeSumMismatch.
//   - ErrInvariantViolation if an edge crosses block boundaries or a piece
//     does not come out with the expected counts.
//
// Complexity: O(V + E).
func DisjointPartitionBySizes(g *core.Graph, sizes *idarray.IdArray) ([]*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opPartitionBySizes, ErrNilGraph)
	}
	nv := g.NumVertices()
	if _, err := resolveSizes(opPartitionBySizes, nv, sizes); err != nil {
		return nil, err
	}

	src, dst := g.Edges()
	ne := int64(len(src))
	rst := make([]*core.Graph, sizes.Len())

	var nodeOffset, edgeOffset int64
	for i, size := range sizes.Data {
		adj := make([]core.EdgeList, size)
		radj := make([]core.EdgeList, size)
		var numEdges int64
		for v := int64(0); v < size; v++ {
			out, err := g.OutList(nodeOffset + v)
			if err != nil {
				return nil, fmt.Errorf("%s: part %d: %w", opPartitionBySizes, i, err)
			}
			in, err := g.InList(nodeOffset + v)
			if err != nil {
				return nil, fmt.Errorf("%s: part %d: %w", opPartitionBySizes, i, err)
			}
			adj[v], radj[v] = out, in
			numEdges += int64(out.Len())
		}
		if edgeOffset+numEdges > ne {
			return nil, fmt.Errorf("%s: part %d: edge window [%d,%d) exceeds %d edges: %w",
				opPartitionBySizes, i, edgeOffset, edgeOffset+numEdges, ne, ErrInvariantViolation)
		}

		for v := range adj {
			if err := rebaseList(adj[v], nodeOffset, edgeOffset, size, numEdges); err != nil {
				return nil, fmt.Errorf("%s: part %d vertex %d out: %w", opPartitionBySizes, i, v, err)
			}
			if err := rebaseList(radj[v], nodeOffset, edgeOffset, size, numEdges); err != nil {
				return nil, fmt.Errorf("%s: part %d vertex %d in: %w", opPartitionBySizes, i, v, err)
			}
		}

		psrc := make([]int64, numEdges)
		pdst := make([]int64, numEdges)
		for j := int64(0); j < numEdges; j++ {
			psrc[j] = src[edgeOffset+j] - nodeOffset
			pdst[j] = dst[edgeOffset+j] - nodeOffset
		}

		part, err := core.Assemble(adj, radj, psrc, pdst)
		if err != nil {
			return nil, fmt.Errorf("%s: part %d: %v: %w", opPartitionBySizes, i, err, ErrInvariantViolation)
		}
		if part.NumVertices() != size || part.NumEdges() != numEdges {
			return nil, fmt.Errorf("%s: part %d: got V=%d E=%d, want V=%d E=%d: %w", opPartitionBySizes, i,
				part.NumVertices(), part.NumEdges(), size, numEdges, ErrInvariantViolation)
		}
		if err := part.Validate(); err != nil {
			return nil, fmt.Errorf("%s: part %d: %v: %w", opPartitionBySizes, i, err, ErrInvariantViolation)
		}

		rst[i] = part
		nodeOffset += size
		edgeOffset += numEdges
	}
	if edgeOffset != ne {
		return nil, fmt.Errorf("%s: %d of %d edges assigned: %w", opPartitionBySizes, edgeOffset, ne, ErrInvariantViolation)
	}
	return rst, nil
}

// rebaseList shifts l in place into a block's local id space and checks the
// results fall inside [0, nv) and [0, ne).
func rebaseList(l core.EdgeList, nodeOffset, edgeOffset, nv, ne int64) error {
	for j := range l.Succ {
		l.Succ[j] -= nodeOffset
		l.EdgeID[j] -= edgeOffset
		if l.Succ[j] < 0 || l.Succ[j] >= nv {
			return fmt.Errorf("neighbor %d outside block: %w", l.Succ[j]+nodeOffset, ErrInvariantViolation)
		}
		if l.EdgeID[j] < 0 || l.EdgeID[j] >= ne {
			return fmt.Errorf("edge %d outside window: %w", l.EdgeID[j]+edgeOffset, ErrInvariantViolation)
		}
	}
	return nil
}
