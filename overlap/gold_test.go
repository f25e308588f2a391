package overlap

import (
	"strings"
	"testing"

	"github.com/gabe-raulet/stringgraph/dna"
	"github.com/grailbio/testutil/expect"
)

func repeatSeq(base string, n int) string {
	return strings.Repeat(base, (n+len(base)-1)/len(base))[:n]
}

// S2 — linear dovetail triangle.
func TestGoldLinearDovetailTriangle(t *testing.T) {
	rs, err := dna.NewReadSet([]string{
		repeatSeq("A", 8),
		repeatSeq("C", 8),
		repeatSeq("G", 8),
	}, nil)
	expect.NoError(t, err)

	records := []Record{
		{ID: 0, Start: 0, Rev: false},
		{ID: 1, Start: 4, Rev: false},
		{ID: 2, Start: 8, Rev: false},
	}
	g, err := Gold(rs, records, 0)
	expect.NoError(t, err)

	expect.EQ(t, g.NumEdges(), 4)

	e, ok := g.Edge(0, 1)
	expect.True(t, ok)
	expect.EQ(t, e.Dir, DirRegular)
	expect.EQ(t, e.Overhang, 4)

	e, ok = g.Edge(1, 0)
	expect.True(t, ok)
	expect.EQ(t, e.Dir, DirExtroverted)
	expect.EQ(t, e.Overhang, 4)

	e, ok = g.Edge(1, 2)
	expect.True(t, ok)
	expect.EQ(t, e.Dir, DirRegular)
	expect.EQ(t, e.Overhang, 4)

	e, ok = g.Edge(2, 1)
	expect.True(t, ok)
	expect.EQ(t, e.Dir, DirExtroverted)
	expect.EQ(t, e.Overhang, 4)

	_, ok = g.Edge(0, 2)
	expect.False(t, ok)
}

// S3 — containment.
func TestGoldContainment(t *testing.T) {
	rs, err := dna.NewReadSet([]string{
		repeatSeq("A", 10),
		repeatSeq("C", 5),
	}, nil)
	expect.NoError(t, err)

	records := []Record{
		{ID: 0, Start: 0, Rev: false},
		{ID: 1, Start: 2, Rev: false},
	}
	g, err := Gold(rs, records, 0)
	expect.NoError(t, err)

	expect.EQ(t, g.NumEdges(), 1)
	e, ok := g.Edge(0, 1)
	expect.True(t, ok)
	expect.EQ(t, e.Dir, ContainmentDir)
	expect.EQ(t, e.Overhang, 0)
}

// S5 — circular wrap.
func TestGoldCircularWrap(t *testing.T) {
	rs, err := dna.NewReadSet([]string{
		repeatSeq("A", 10),
		repeatSeq("C", 8),
	}, nil)
	expect.NoError(t, err)

	records := []Record{
		{ID: 0, Start: 15, Rev: false},
		{ID: 1, Start: 3, Rev: false},
	}

	linear, err := Gold(rs, records, 0)
	expect.NoError(t, err)
	expect.EQ(t, linear.NumEdges(), 0)

	circular, err := Gold(rs, records, 20)
	expect.NoError(t, err)
	expect.True(t, circular.NumEdges() > 0)

	e, ok := circular.Edge(0, 1)
	expect.True(t, ok)
	expect.EQ(t, e.Overhang, 6)
	e, ok = circular.Edge(1, 0)
	expect.True(t, ok)
	expect.EQ(t, e.Overhang, 8)
}

func TestGoldRejectsRecordLengthMismatch(t *testing.T) {
	rs, err := dna.NewReadSet([]string{"ACGT"}, nil)
	expect.NoError(t, err)
	_, err = Gold(rs, nil, 0)
	expect.NotNil(t, err)
}

// Invariant 4: every non-containment edge has a reverse shadow edge with
// overhang >= 0.
func TestGoldShadowEdgesExist(t *testing.T) {
	rs, err := dna.NewReadSet([]string{
		repeatSeq("A", 8),
		repeatSeq("C", 8),
	}, nil)
	expect.NoError(t, err)

	records := []Record{{ID: 0, Start: 0}, {ID: 1, Start: 4}}
	g, err := Gold(rs, records, 0)
	expect.NoError(t, err)

	for u := 0; u < g.N(); u++ {
		for v, e := range g.Neighbors(u) {
			expect.True(t, e.Overhang >= 0)
			if e.Dir == ContainmentDir {
				continue
			}
			rev, ok := g.Edge(v, u)
			expect.True(t, ok)
			expect.True(t, rev.Overhang >= 0)
		}
	}
}
