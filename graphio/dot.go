// SPDX-License-Identifier: MIT

package graphio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvbatch/core"
	"github.com/katalvlaran/lvbatch/idarray"
)

// DOTOptions configures DOT export.
type DOTOptions struct {
	// Blocks, when set, groups consecutive vertex blocks of the given sizes
	// into clusters, one per batched graph. Sizes must sum to the vertex
	// count.
	Blocks *idarray.IdArray
	// EdgeLabels labels each edge with its edge id.
	EdgeLabels bool
}

// GraphDOT converts g to Graphviz DOT. Vertices are named by id; edges are
// written in edge-id order.
func GraphDOT(g *core.Graph, opts DOTOptions) (string, error) {
	nv := g.NumVertices()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white];\n")
	buf.WriteString("\n")

	if opts.Blocks != nil {
		if err := idarray.Validate(opts.Blocks); err != nil {
			return "", fmt.Errorf("blocks: %w", err)
		}
		var next int64
		for i, size := range opts.Blocks.Data {
			if size < 0 || next+size > nv {
				return "", fmt.Errorf("block %d size %d exceeds %d vertices: %w", i, size, nv, ErrMalformed)
			}
			fmt.Fprintf(&buf, "  subgraph cluster_%d {\n    label=\"%d\";\n", i, i)
			for v := next; v < next+size; v++ {
				fmt.Fprintf(&buf, "    %d;\n", v)
			}
			buf.WriteString("  }\n")
			next += size
		}
		if next != nv {
			return "", fmt.Errorf("blocks cover %d of %d vertices: %w", next, nv, ErrMalformed)
		}
	} else {
		for v := int64(0); v < nv; v++ {
			fmt.Fprintf(&buf, "  %d;\n", v)
		}
	}

	buf.WriteString("\n")
	src, dst := g.Edges()
	for e := range src {
		if opts.EdgeLabels {
			fmt.Fprintf(&buf, "  %d -> %d [label=\"%d\"];\n", src[e], dst[e], e)
			continue
		}
		fmt.Fprintf(&buf, "  %d -> %d;\n", src[e], dst[e])
	}
	buf.WriteString("}\n")
	return buf.String(), nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
