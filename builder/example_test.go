// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvbatch/builder"
)

// ExampleBuildBatch composes two fixtures into one batched graph.
func ExampleBuildBatch() {
	g, sizes, err := builder.BuildBatch(nil, builder.Cycle(3), builder.Path(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	src, dst := g.Edges()
	fmt.Println("sizes:", sizes.Data)
	fmt.Println("edges:", src, dst)

	// Output:
	// sizes: [3 2]
	// edges: [0 1 2 3] [1 2 0 4]
}
