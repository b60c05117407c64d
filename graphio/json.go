// SPDX-License-Identifier: MIT

package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvbatch/core"
	"github.com/katalvlaran/lvbatch/csr"
)

type graphDoc struct {
	NumVertices int64     `json:"num_vertices"`
	Edges       [][]int64 `json:"edges"`
}

type csrDoc struct {
	Indptr  []int64 `json:"indptr"`
	Indices []int64 `json:"indices"`
	EdgeIDs []int64 `json:"edge_ids"`
}

type batchDoc struct {
	Graphs []graphDoc `json:"graphs"`
}

// ReadGraphJSON decodes an adjacency graph from r.
//
// Edges are inserted in document order, so edge i of the document becomes
// edge id i. ReadGraphJSON returns an error wrapping ErrMalformed if the
// vertex count is negative, an edge does not have exactly two endpoints,
// or an endpoint is out of range. ReadGraphJSON does not close r.
func ReadGraphJSON(r io.Reader) (*core.Graph, error) {
	var doc graphDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return doc.graph()
}

// WriteGraphJSON encodes g as an adjacency document and writes it to w.
func WriteGraphJSON(g *core.Graph, w io.Writer) error {
	return encode(w, newGraphDoc(g))
}

// ReadCSRJSON decodes a CSR graph from r and validates its layout.
func ReadCSRJSON(r io.Reader) (*csr.CSR, error) {
	var doc csrDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.Indptr == nil {
		doc.Indptr = []int64{0}
	}
	c, err := csr.New(doc.Indptr, doc.Indices, doc.EdgeIDs)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformed)
	}
	return c, nil
}

// WriteCSRJSON encodes c as a CSR document and writes it to w.
func WriteCSRJSON(c *csr.CSR, w io.Writer) error {
	return encode(w, csrDoc{Indptr: c.Indptr(), Indices: c.Indices(), EdgeIDs: c.EdgeIDs()})
}

// ReadBatchJSON decodes a list of adjacency graphs from r.
func ReadBatchJSON(r io.Reader) ([]*core.Graph, error) {
	var doc batchDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	gs := make([]*core.Graph, len(doc.Graphs))
	for i := range doc.Graphs {
		g, err := doc.Graphs[i].graph()
		if err != nil {
			return nil, fmt.Errorf("graph %d: %w", i, err)
		}
		gs[i] = g
	}
	return gs, nil
}

// WriteBatchJSON encodes graphs as a batch document and writes it to w.
func WriteBatchJSON(graphs []*core.Graph, w io.Writer) error {
	doc := batchDoc{Graphs: make([]graphDoc, len(graphs))}
	for i, g := range graphs {
		doc.Graphs[i] = newGraphDoc(g)
	}
	return encode(w, doc)
}

// ImportGraph reads an adjacency graph from the JSON file at path.
func ImportGraph(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	g, err := ReadGraphJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ExportGraph writes g to a JSON file at path.
func ExportGraph(g *core.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraphJSON(g, f)
}

// ImportCSR reads a CSR graph from the JSON file at path.
func ImportCSR(path string) (*csr.CSR, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	c, err := ReadCSRJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func newGraphDoc(g *core.Graph) graphDoc {
	src, dst := g.Edges()
	doc := graphDoc{NumVertices: g.NumVertices(), Edges: make([][]int64, len(src))}
	for e := range src {
		doc.Edges[e] = []int64{src[e], dst[e]}
	}
	return doc
}

func (d graphDoc) graph() (*core.Graph, error) {
	if d.NumVertices < 0 {
		return nil, fmt.Errorf("num_vertices=%d: %w", d.NumVertices, ErrMalformed)
	}
	g := core.NewGraph()
	if err := g.AddVertices(d.NumVertices); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformed)
	}
	for i, e := range d.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("edge %d has %d endpoints: %w", i, len(e), ErrMalformed)
		}
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("edge %d %d->%d: %v: %w", i, e[0], e[1], err, ErrMalformed)
		}
	}
	return g, nil
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
