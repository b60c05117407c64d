// Package builder generates deterministic fixture graphs for batching.
//
// Every Constructor appends a fresh block of vertices to the graph it is
// given and only connects vertices inside that block. Composing constructors
// with BuildGraph therefore yields a batched graph: the disjoint union of the
// individual topologies, in call order, with contiguous vertex and edge id
// windows per block. BuildBatch additionally returns the block sizes, ready
// for graphop.DisjointPartitionBySizes.
//
// Topologies:
//
//   - Cycle(n), Path(n), Star(n), Wheel(n)
//   - Complete(n), CompleteBipartite(n1, n2)
//   - Grid(rows, cols)
//   - RandomSparse(n, p)
//
// Edges are directed (core.Graph is a multigraph of directed edges). Each
// constructor emits one canonical orientation; WithBidirectional mirrors every
// non-loop edge immediately after it is emitted.
//
// Configuration is functional: BuilderOption values resolve into an immutable
// builderConfig. Option constructors panic on meaningless input (nil RNG);
// constructors themselves never panic and report sentinel errors.
package builder
