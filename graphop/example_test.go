// SPDX-License-Identifier: MIT

package graphop_test

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/core"
	"github.com/katalvlaran/lvbatch/graphop"
	"github.com/katalvlaran/lvbatch/idarray"
)

// ExampleDisjointUnion batches two graphs and splits them back apart.
func ExampleDisjointUnion() {
	a := core.NewGraph()
	_ = a.AddVertices(2)
	_, _ = a.AddEdge(0, 1)

	b := core.NewGraph()
	_ = b.AddVertices(3)
	_, _ = b.AddEdge(2, 0)
	_, _ = b.AddEdge(1, 1)

	batch, _ := graphop.DisjointUnion([]*core.Graph{a, b})
	src, dst := batch.Edges()
	fmt.Println("batch:", batch.NumVertices(), batch.NumEdges(), src, dst)

	parts, _ := graphop.DisjointPartitionBySizes(batch, idarray.New(2, 3))
	fmt.Println("round trip:", parts[0].Equal(a), parts[1].Equal(b))

	// Output:
	// batch: 5 3 [0 4 3] [1 2 3]
	// round trip: true true
}

// ExampleMapParentIDToSubgraphID locates subgraph ids within a parent list.
func ExampleMapParentIDToSubgraphID() {
	pos, _ := graphop.MapParentIDToSubgraphID(idarray.New(5, 3, 8, 1), idarray.New(8, 1, 9))
	fmt.Println(pos.Data)

	ids, _ := graphop.ExpandIDs(idarray.New(10, 20, 30), idarray.New(0, 2, 2, 5))
	fmt.Println(ids.Data)

	// Output:
	// [2 3 -1]
	// [10 10 30 30 30]
}
