package overlap

import (
	"sort"

	"github.com/gabe-raulet/stringgraph/dna"
	"github.com/gabe-raulet/stringgraph/errs"
)

// Record is the known placement of one read on the reference used by the
// gold-standard builder: where it starts and whether it was sequenced off
// the reverse strand. Length is derived from the read itself.
type Record struct {
	ID    int
	Start int
	Rev   bool
}

// Gold builds an overlap graph from ground-truth read placements. When
// genomeLength > 0 the reference is treated as circular and overlaps that
// wrap the origin are discovered by conceptually duplicating the
// start-sorted record list, shifted by genomeLength; genomeLength == 0
// means a linear reference and no wrap handling.
func Gold(reads *dna.ReadSet, records []Record, genomeLength int) (*Graph, error) {
	n := reads.Len()
	if len(records) != n {
		return nil, errs.E(errs.InvalidArgument, "overlap.Gold", "len(records)=%d != len(reads)=%d", len(records), n)
	}

	g, err := New(n, reads)
	if err != nil {
		return nil, err
	}

	type placed struct {
		id, start, length int
		rev               bool
	}

	base := make([]placed, n)
	for i, r := range records {
		if err := g.checkVertex("overlap.Gold", r.ID); err != nil {
			return nil, err
		}
		base[i] = placed{id: r.ID, start: r.Start, length: len(reads.Seq(r.ID)), rev: r.Rev}
	}
	sort.Slice(base, func(i, j int) bool { return base[i].start < base[j].start })

	recs := base
	if genomeLength > 0 {
		recs = make([]placed, 0, 2*n)
		recs = append(recs, base...)
		for _, r := range base {
			recs = append(recs, placed{id: r.id, start: r.start + genomeLength, length: r.length, rev: r.rev})
		}
	}

	for i := 0; i < n; i++ {
		ri := recs[i]
		for j := i + 1; j < len(recs); j++ {
			rj := recs[j]
			if rj.start >= ri.start+ri.length {
				break
			}

			u, v := ri.id, rj.id
			upos, vpos := ri.start, rj.start
			ulen, vlen := ri.length, rj.length

			switch {
			case vpos+vlen <= upos+ulen:
				if err := g.AddOverlap(u, v, ContainmentDir, 0); err != nil {
					return nil, err
				}
			case vpos == upos:
				if err := g.AddOverlap(v, u, ContainmentDir, 0); err != nil {
					return nil, err
				}
			default:
				suflen := vpos + vlen - upos - ulen
				prelen := vpos - upos
				dirUV, dirVU := strandPairDir(ri.rev, rj.rev)
				if err := g.AddOverlap(u, v, dirUV, suflen); err != nil {
					return nil, err
				}
				if err := g.AddOverlap(v, u, dirVU, prelen); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// strandPairDir implements the strand-pair table of the gold-standard
// builder: the dir code for the forward (u->v) and reverse (v->u) edges
// of a proper dovetail, selected by each read's strand.
func strandPairDir(urev, vrev bool) (uv, vu int) {
	switch {
	case !urev && !vrev:
		return DirRegular, DirExtroverted
	case !urev && vrev:
		return DirIntroverted, DirIntroverted
	case urev && !vrev:
		return DirReverse, DirReverse
	default:
		return DirExtroverted, DirRegular
	}
}
