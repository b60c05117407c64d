// Package lvbatch batches graphs and splits batched graphs back apart.
//
// A batched graph is the disjoint union of several graphs: input i occupies a
// contiguous window of vertex ids and a contiguous window of edge ids, offset
// by the totals of the inputs before it. lvbatch builds such graphs, splits
// them into their parts, and maps ids between a graph and its subgraphs, for
// two storage layouts.
//
// Subpackages:
//
//	idarray/  — 1-D int64 id vectors with a tensor-style header and the shared guard
//	core/     — adjacency-list Graph: forward/reverse lists plus the flat edge list
//	csr/      — compressed sparse row graphs and conversion from/to core.Graph
//	graphop/  — DisjointUnion, DisjointPartitionBy{Num,Sizes}, their CSR forms,
//	            LineGraph, MapParentIDToSubgraphID, ExpandIDs
//	builder/  — deterministic fixture generators composed into batches
//	graphio/  — JSON documents, DOT export and SVG rendering
//
// The lvbatch command (cmd/lvbatch) exposes the transforms over JSON files.
//
// Quick start:
//
//	a, _ := builder.BuildGraph(nil, builder.Cycle(3))
//	b, _ := builder.BuildGraph(nil, builder.Star(4))
//	batch, _ := graphop.DisjointUnion([]*core.Graph{a, b})
//	parts, _ := graphop.DisjointPartitionBySizes(batch, idarray.New(3, 4))
//	// parts[0].Equal(a) && parts[1].Equal(b)
//
// All transforms are pure: inputs are never modified, and on error no
// partial result is returned.
package lvbatch
