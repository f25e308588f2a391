// Package gmlgraph adapts an overlap.ExportView into a gonum
// graph.Directed and marshals it to GML. The node/edge wrapper types
// implementing encoding.Attributer are grounded on the node/edge types in
// igor/victor/topo.go, generalized from that tool's cluster/weight
// attributes to this pipeline's seq/dir/len attributes.
package gmlgraph

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/gml"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/gabe-raulet/stringgraph/overlap"
)

// node is a graph node carrying the read sequence it represents.
type node struct {
	id  int64
	seq string
}

var _ encoding.Attributer = node{}

func (n node) ID() int64 { return n.id }
func (n node) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "seq", Value: n.seq}}
}

// edge is a directed overlap edge carrying its dir code and overhang
// length.
type edge struct {
	from, to    node
	dir, length int
}

var _ encoding.Attributer = edge{}

func (e edge) From() graph.Node { return e.from }
func (e edge) To() graph.Node   { return e.to }
func (e edge) ReversedEdge() graph.Edge {
	return edge{from: e.to, to: e.from, dir: e.dir, length: e.length}
}
func (e edge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "dir", Value: fmt.Sprint(e.dir)},
		{Key: "len", Value: fmt.Sprint(e.length)},
	}
}

// Write marshals view as a GML graph named name to w.
func Write(w io.Writer, view *overlap.ExportView, name string) error {
	g := simple.NewDirectedGraph()

	nodes := make([]node, view.NumVertices())
	for i, seq := range view.Seqs {
		nodes[i] = node{id: int64(i), seq: seq}
		g.AddNode(nodes[i])
	}
	for _, e := range view.Edges {
		g.SetEdge(edge{from: nodes[e.U], to: nodes[e.V], dir: e.Dir, length: e.Len})
	}

	data, err := gml.Marshal(g, name, "")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
