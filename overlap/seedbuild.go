package overlap

import (
	"github.com/gabe-raulet/stringgraph/dna"
	"github.com/gabe-raulet/stringgraph/minimizer"
)

// SeedExtend builds an overlap graph from minimizer seeds, assuming each
// seed's shared k-mer extends to a perfect flanking match (no error model).
// For a reverse-complement seed (RC true), vpos is first reflected onto u's
// strand via vlen-vpos-k-1 before the position comparison that classifies
// the overlap as containment or one of the four dovetail orientations. The
// reflected value is one less than the k-mer's start offset on v's reverse
// strand (vlen-vpos-k), and overhangs of rc seeds are computed from it.
//
// Because multiple seeds can imply edges for the same pair, de-duplication
// is left entirely to Graph.AddOverlap's largest-overhang-wins rule;
// contradictory dir values from conflicting seeds are not reconciled.
func SeedExtend(reads *dna.ReadSet, seeds []minimizer.Seed, k int) (*Graph, error) {
	g, err := New(reads.Len(), reads)
	if err != nil {
		return nil, err
	}

	for _, s := range seeds {
		if err := g.checkVertex("overlap.SeedExtend", s.U); err != nil {
			return nil, err
		}
		if err := g.checkVertex("overlap.SeedExtend", s.V); err != nil {
			return nil, err
		}

		u, v := s.U, s.V
		ulen := len(reads.Seq(u))
		vlen := len(reads.Seq(v))
		upos := s.UPos
		vpos := s.VPos
		rc := s.RC
		if rc {
			vpos = vlen - vpos - k - 1
		}

		switch {
		case upos <= vpos && (ulen-upos) <= (vlen-vpos):
			if err := g.AddOverlap(v, u, ContainmentDir, 0); err != nil {
				return nil, err
			}
		case upos >= vpos && (ulen-upos) >= (vlen-vpos):
			if err := g.AddOverlap(u, v, ContainmentDir, 0); err != nil {
				return nil, err
			}
		case upos > vpos:
			suflen := (vlen - vpos) - (ulen - upos)
			prelen := upos - vpos
			dirUV, dirVU := DirRegular, DirExtroverted
			if rc {
				dirUV, dirVU = DirIntroverted, DirIntroverted
			}
			if err := g.AddOverlap(u, v, dirUV, suflen); err != nil {
				return nil, err
			}
			if err := g.AddOverlap(v, u, dirVU, prelen); err != nil {
				return nil, err
			}
		default:
			suflen := vpos - upos
			prelen := (ulen - upos) - (vlen - vpos)
			dirUV, dirVU := DirExtroverted, DirRegular
			if rc {
				dirUV, dirVU = DirReverse, DirReverse
			}
			if err := g.AddOverlap(u, v, dirUV, suflen); err != nil {
				return nil, err
			}
			if err := g.AddOverlap(v, u, dirVU, prelen); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
