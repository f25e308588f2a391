package overlap

// Pruned removes containment: any vertex that is the target of a
// containment edge (dir=ContainmentDir) becomes isolated in the returned
// graph. Non-contained vertices keep every edge whose other endpoint is
// also non-contained. The receiver is left untouched.
func (g *Graph) Pruned() (*Graph, error) {
	contained := make([]bool, g.n)
	for u := 0; u < g.n; u++ {
		for v, e := range g.adj[u] {
			if e.Dir == ContainmentDir {
				contained[v] = true
			}
		}
	}

	out, err := New(g.n, g.reads)
	if err != nil {
		return nil, err
	}
	for u := 0; u < g.n; u++ {
		if contained[u] {
			continue
		}
		for v, e := range g.adj[u] {
			if contained[v] {
				continue
			}
			out.adj[u][v] = e
		}
	}
	return out, nil
}

// arrowBits splits a dovetail dir code into its tail bit (arrowhead at the
// edge's source end) and head bit (arrowhead at its target end).
func arrowBits(dir int) (tail, head int) {
	return (dir >> 1) & 1, dir & 1
}

type vpair struct{ a, b int }

// reduce is shared by NaiveTransitiveReduce and NaiveTransitiveReduceLiteral;
// literal selects which overhang inequality decides whether the (u,w)/(w,u)
// pair is redundant given the u-v-w triangle.
func (g *Graph) reduce(fuzz int, literal bool) (*Graph, error) {
	marked := make(map[vpair]bool)

	for u := 0; u < g.n; u++ {
		for v, uv := range g.adj[u] {
			if uv.Dir == ContainmentDir {
				continue
			}
			uvTail, uvHead := arrowBits(uv.Dir)

			for w, vw := range g.adj[v] {
				if w == u || vw.Dir == ContainmentDir {
					continue
				}
				uw, ok := g.adj[u][w]
				if !ok || uw.Dir == ContainmentDir {
					continue
				}
				uwTail, uwHead := arrowBits(uw.Dir)
				vwTail, vwHead := arrowBits(vw.Dir)

				// The walk u->v->w is taken to match the direct edge u->w
				// only when uv's head bit equals uw's head bit, vw's tail
				// bit equals uw's tail bit, and uv's tail bit differs from
				// vw's head bit.
				if uvHead != uwHead || vwTail != uwTail || uvTail == vwHead {
					continue
				}

				var redundant bool
				if literal {
					// The source's literal predicate: overhang(u,w) cancels
					// out of both sides, leaving the tautology
					// overhang(w,v) >= fuzz, which over-reduces. Kept only
					// so a regression test can show the difference.
					wv, exists := g.adj[w][v]
					if !exists {
						continue
					}
					redundant = uw.Overhang+wv.Overhang >= uw.Overhang+fuzz
				} else {
					// Myers's standard transitive-reduction inequality.
					redundant = uv.Overhang+vw.Overhang >= uw.Overhang-fuzz
				}

				if redundant {
					marked[vpair{u, w}] = true
					marked[vpair{w, u}] = true
				}
			}
		}
	}

	out, err := New(g.n, g.reads)
	if err != nil {
		return nil, err
	}
	for u := 0; u < g.n; u++ {
		for v, e := range g.adj[u] {
			if marked[vpair{u, v}] {
				continue
			}
			out.adj[u][v] = e
		}
	}
	return out, nil
}

// NaiveTransitiveReduce removes edges subsumed by a two-edge path under the
// corrected Myers inequality: overhang(u,v)+overhang(v,w) >= overhang(u,w)-fuzz.
// This is the reduction every caller should use.
func (g *Graph) NaiveTransitiveReduce(fuzz int) (*Graph, error) {
	return g.reduce(fuzz, false)
}

// NaiveTransitiveReduceLiteral reproduces the source's literal (buggy)
// predicate verbatim, which over-reduces because overhang(u,w) appears on
// both sides of the inequality and cancels. It exists only to back a
// regression test demonstrating the divergence from NaiveTransitiveReduce;
// production code should not call it.
func (g *Graph) NaiveTransitiveReduceLiteral(fuzz int) (*Graph, error) {
	return g.reduce(fuzz, true)
}
