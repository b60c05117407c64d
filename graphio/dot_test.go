// SPDX-License-Identifier: MIT

package graphio_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbatch/graphio"
	"github.com/katalvlaran/lvbatch/idarray"
)

func TestGraphDOT_Plain(t *testing.T) {
	dot, err := graphio.GraphDOT(cycle(t), graphio.DOTOptions{})
	require.NoError(t, err)
	assert.Contains(t, dot, "digraph G")
	assert.Contains(t, dot, "  0 -> 1;\n")
	assert.Contains(t, dot, "  2 -> 0;\n")
	assert.NotContains(t, dot, "cluster_")
}

func TestGraphDOT_Blocks(t *testing.T) {
	dot, err := graphio.GraphDOT(cycle(t), graphio.DOTOptions{
		Blocks:     idarray.New(1, 2),
		EdgeLabels: true,
	})
	require.NoError(t, err)
	assert.Contains(t, dot, "subgraph cluster_0")
	assert.Contains(t, dot, "subgraph cluster_1")
	assert.Contains(t, dot, `1 -> 2 [label="1"]`)

	_, err = graphio.GraphDOT(cycle(t), graphio.DOTOptions{Blocks: idarray.New(1, 1)})
	assert.ErrorIs(t, err, graphio.ErrMalformed)
	_, err = graphio.GraphDOT(cycle(t), graphio.DOTOptions{Blocks: idarray.New(4)})
	assert.ErrorIs(t, err, graphio.ErrMalformed)
}

func TestRenderSVG(t *testing.T) {
	dot, err := graphio.GraphDOT(cycle(t), graphio.DOTOptions{})
	require.NoError(t, err)

	svg, err := graphio.RenderSVG(context.Background(), dot)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(svg), "<svg"), "output missing <svg> tag")
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	_, err := graphio.RenderSVG(context.Background(), "digraph G { a -> ")
	assert.Error(t, err)
}
