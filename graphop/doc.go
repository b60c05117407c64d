// SPDX-License-Identifier: MIT

// Package graphop implements the structural batch transforms of lvbatch:
// disjoint union and partition for both graph layouts, line graphs, and the
// id utilities used to reconcile a subgraph with its parent.
//
// What
//
//   - LineGraph: edges of g become vertices; e=(u,v) → e'=(v,w) becomes an
//     edge, optionally skipping immediate backtracking (w == u).
//   - DisjointUnion / DisjointUnionCSR: concatenate graphs into one, each
//     input occupying a contiguous vertex block (and edge block) in order.
//   - DisjointPartitionByNum / DisjointPartitionBySizes and their CSR
//     counterparts: the inverse of the union, driven by vertex counts.
//   - MapParentIDToSubgraphID: parent id → local index, or -1.
//   - ExpandIDs: run-length broadcast of ids over group offsets.
//
// Purity
//
//	No function mutates its inputs. Every result is built from fresh storage;
//	on error nothing is returned, so callers never see a partial batch.
//
// Edge ids
//
//	The adjacency union re-inserts edges graph by graph in edge-id order, so
//	edge e of input i ends up with id e + (edges of inputs before i). That is
//	the same rebasing the CSR union applies explicitly, and the partitions of
//	both layouts undo it. Both layouts therefore share one edge-id contract.
//
// Concurrency
//
//	All transforms are synchronous. Only MapParentIDToSubgraphID fans out:
//	the lookup structure is built once, then query chunks are resolved on
//	an errgroup of workers that only read it.
//
// Errors (match with errors.Is)
//
//	ErrNilGraph             - a nil graph was supplied.
//	ErrDimensionMismatch    - id array not 1-D, or lengths disagree.
//	ErrDeviceOrTypeMismatch - id array not CPU/int64.
//	ErrSizeSumMismatch      - partition sizes do not sum to V.
//	ErrIndivisiblePartition - V is not a multiple of the partition count.
//	ErrNegativeSize         - a partition size is negative.
//	ErrInvariantViolation   - a produced partition failed its sanity checks.
//	ErrInvalidOffsets       - expansion offsets do not start at 0 or decrease.
//	ErrUnsortedParent       - sorted strategy forced on an unsorted parent.
package graphop
