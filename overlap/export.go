package overlap

// ExportEdge is one directed edge of an ExportView: dir mirrors the Edge's
// Dir code, and Len is its overhang, matching the GML attribute names
// required downstream ("dir", "len").
type ExportEdge struct {
	U, V int
	Dir  int
	Len  int
}

// ExportView is the plain, gonum-agnostic handoff produced by Export: a
// directed graph with integer edge attributes dir/len and a per-vertex
// sequence. encoding/gmlgraph adapts this into a gonum graph.Directed for
// GML marshaling.
type ExportView struct {
	Seqs  []string
	Edges []ExportEdge
}

// NumVertices returns the number of vertices (== len(Seqs)).
func (v *ExportView) NumVertices() int { return len(v.Seqs) }

// Export produces the plain directed-graph view of g, with every edge's
// dir and overhang (as "len") and every vertex's backing sequence.
func (g *Graph) Export() *ExportView {
	seqs := make([]string, g.n)
	if g.reads != nil {
		for i := 0; i < g.n; i++ {
			seqs[i] = g.reads.Seq(i)
		}
	}

	var edges []ExportEdge
	for u := 0; u < g.n; u++ {
		for v, e := range g.adj[u] {
			edges = append(edges, ExportEdge{U: u, V: v, Dir: e.Dir, Len: e.Overhang})
		}
	}

	return &ExportView{Seqs: seqs, Edges: edges}
}
