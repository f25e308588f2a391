package minimizer

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestSeedsNoneBelowTwoReads(t *testing.T) {
	idx, err := Build([]string{"ACGTACGT"}, 3, 2)
	expect.NoError(t, err)
	expect.EQ(t, len(Seeds(idx)), 0)
}

func TestSeedsPairsReadsSharingAMinimizer(t *testing.T) {
	idx, err := Build([]string{"ACGTACGT", "ACGTACGT", "TTTTTTTT"}, 3, 2)
	expect.NoError(t, err)
	seeds := Seeds(idx)
	expect.True(t, len(seeds) > 0)
	for _, s := range seeds {
		expect.True(t, s.U < s.V)
		expect.True(t, s.U == 0 || s.U == 1)
		expect.True(t, s.V == 0 || s.V == 1)
	}
}

func TestSeedsRCFlag(t *testing.T) {
	idx, err := Build([]string{"AAACCC", "GGGTTT"}, 3, 3)
	expect.NoError(t, err)
	seeds := Seeds(idx)
	for _, s := range seeds {
		expect.EQ(t, s.RC, s.URev != s.VRev)
	}
}

// A single read can legitimately contribute two entries to the same
// canonical-code bucket, since C2's per-read dedup is on the minimizer
// *string*, not the canonical code two distinct strings can collapse to
// (spec's own "ACG"/"CGT" example shares code 6). Every entry in the
// bucket must be paired against every entry of another read, so a second
// entry from the same read still yields its own cross-read seed; the two
// same-read entries are not paired with each other.
func TestSeedsPairsAllEntriesNotJustFirstPerRead(t *testing.T) {
	idx := &Index{
		K: 3, W: 1,
		codes: []uint64{7},
		buckets: map[uint64][]Entry{
			7: {
				{Read: 0, Pos: 1},
				{Read: 0, Pos: 5},
				{Read: 1, Pos: 2},
			},
		},
	}

	seeds := Seeds(idx)
	expect.EQ(t, len(seeds), 2)

	var crossPairs int
	for _, s := range seeds {
		if s.U == 0 && s.V == 1 {
			crossPairs++
		}
	}
	expect.EQ(t, crossPairs, 2)

	foundPos1 := false
	foundPos5 := false
	for _, s := range seeds {
		if s.U == 0 && s.V == 1 {
			if s.UPos == 1 {
				foundPos1 = true
			}
			if s.UPos == 5 {
				foundPos5 = true
			}
		}
	}
	expect.True(t, foundPos1)
	expect.True(t, foundPos5)
}
