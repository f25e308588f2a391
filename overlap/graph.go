// Package overlap implements the bidirected overlap graph: its adjacency
// structure (C4), two builders (C5 gold-standard, C6 seed-extension), and
// the simplifier (C7). The adjacency representation — a slice indexed by
// vertex of maps from target vertex to edge payload, with shadow reverse edges materialized
// for O(1) reverse lookup — follows the source's design note in preference
// to a vector-of-vectors, matching the map-of-map adjacency fusion/fusion.go
// uses for its gene-pair tables.
package overlap

import (
	"github.com/gabe-raulet/stringgraph/dna"
	"github.com/gabe-raulet/stringgraph/errs"
)

// Dir values. ContainmentDir marks "target is contained in source"; the
// four dovetail values pack (tail_bit<<1)|head_bit, where tail_bit selects
// the arrowhead at the source end (0 = ">", 1 = "<") and head_bit the
// arrowhead at the target end (0 = "<", 1 = ">").
const (
	ContainmentDir = -1

	DirRegular     = 1 // >--->
	DirIntroverted = 0 // >---<
	DirExtroverted = 2 // <--->
	DirReverse     = 3 // <---<
)

// Edge is the payload stored per (source, target) adjacency entry.
type Edge struct {
	Dir      int
	Overhang int
}

// Graph is a bidirected overlap graph over a fixed vertex set 0..n-1.
// Vertices correspond 1:1 to reads; reads itself is optional (nil is
// permitted for builder unit tests that only care about edge structure);
// with nil reads, Export gives every vertex an empty sequence.
type Graph struct {
	n     int
	reads *dna.ReadSet
	adj   []map[int]Edge
}

// New constructs an empty graph over n vertices. If reads is non-nil it
// must have exactly n reads.
func New(n int, reads *dna.ReadSet) (*Graph, error) {
	if n < 0 {
		return nil, errs.E(errs.InvalidArgument, "overlap.New", "n=%d must be non-negative", n)
	}
	if reads != nil && reads.Len() != n {
		return nil, errs.E(errs.InvalidArgument, "overlap.New", "len(reads)=%d != n=%d", reads.Len(), n)
	}
	g := &Graph{n: n, reads: reads, adj: make([]map[int]Edge, n)}
	for i := range g.adj {
		g.adj[i] = make(map[int]Edge)
	}
	return g, nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// Reads returns the read set backing this graph, or nil.
func (g *Graph) Reads() *dna.ReadSet { return g.reads }

func (g *Graph) checkVertex(op string, v int) error {
	if v < 0 || v >= g.n {
		return errs.E(errs.IndexOutOfRange, op, "vertex %d out of range [0,%d)", v, g.n)
	}
	return nil
}

// AddOverlap records a directed edge (u,v) with the given dir and overhang.
// If an edge already exists with overhang >= the new one, the call is a
// no-op; otherwise the edge (including dir) is overwritten. This is the
// sole de-duplication policy for the seed-extension builder, where multiple
// seeds may independently propose edges for the same pair.
func (g *Graph) AddOverlap(u, v, dir, overhang int) error {
	if err := g.checkVertex("overlap.AddOverlap", u); err != nil {
		return err
	}
	if err := g.checkVertex("overlap.AddOverlap", v); err != nil {
		return err
	}
	if existing, ok := g.adj[u][v]; ok && existing.Overhang >= overhang {
		return nil
	}
	g.adj[u][v] = Edge{Dir: dir, Overhang: overhang}
	return nil
}

// Edge returns the edge (u,v) and whether it exists.
func (g *Graph) Edge(u, v int) (Edge, bool) {
	e, ok := g.adj[u][v]
	return e, ok
}

// Neighbors returns the adjacency map of u. Callers must not mutate it.
func (g *Graph) Neighbors(u int) map[int]Edge { return g.adj[u] }

// NumEdges returns the sum of adjacency sizes across all vertices.
func (g *Graph) NumEdges() int {
	total := 0
	for _, m := range g.adj {
		total += len(m)
	}
	return total
}
