// Package graphio reads and writes graphs for the lvbatch tools.
//
// Two JSON documents are supported. An adjacency graph is stored as its
// vertex count plus the flat edge list in edge-id order:
//
//	{
//	  "num_vertices": 3,
//	  "edges": [[0, 1], [1, 2], [2, 0]]
//	}
//
// A CSR graph is stored as its three arrays:
//
//	{
//	  "indptr": [0, 1, 2, 3],
//	  "indices": [1, 2, 0],
//	  "edge_ids": [0, 1, 2]
//	}
//
// A batch is a JSON object {"graphs": [...]} holding adjacency graphs in
// order. Reading a graph re-inserts its edges in order, so edge ids survive a
// round trip.
//
// [GraphDOT] converts a graph to Graphviz DOT (optionally clustering vertex
// blocks of a batched graph) and [RenderSVG] renders DOT to SVG.
package graphio
