package minimizer

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestBuildRejectsBadParams(t *testing.T) {
	_, err := Build([]string{"ACGT"}, 0, 2)
	expect.NotNil(t, err)

	_, err = Build([]string{"ACGT"}, 2, 0)
	expect.NotNil(t, err)
}

func TestBuildSkipsShortReads(t *testing.T) {
	idx, err := Build([]string{"AC"}, 3, 2)
	expect.NoError(t, err)
	expect.EQ(t, len(idx.Codes()), 0)
}

func TestBuildSelectsLexicographicallySmallestString(t *testing.T) {
	// k=2, w=3: read "TTAC" has one window [0,3) over offsets {0,1,2} with
	// k-mers "TT","TA","AC". Lexicographically smallest string is "AC" at
	// offset 2.
	idx, err := Build([]string{"TTAC"}, 2, 3)
	expect.NoError(t, err)
	expect.EQ(t, len(idx.Codes()), 1)

	code := idx.Codes()[0]
	bucket := idx.Bucket(code)
	expect.EQ(t, len(bucket), 1)
	expect.EQ(t, bucket[0].Pos, 2)
}

func TestBuildDedupsRepeatedMinimizerWithinARead(t *testing.T) {
	// "AAAAAA" with k=1,w=1: every window selects "A" at its own offset, but
	// the per-read dedup keeps only the first occurrence.
	idx, err := Build([]string{"AAAAAA"}, 1, 1)
	expect.NoError(t, err)
	expect.EQ(t, len(idx.Codes()), 1)
	expect.EQ(t, len(idx.Bucket(idx.Codes()[0])), 1)
	expect.EQ(t, idx.Bucket(idx.Codes()[0])[0].Pos, 0)
}

func TestBuildWindowCountIsInclusiveOfFinalOffset(t *testing.T) {
	// Regression for this implementation's inclusive window-count bound
	// (l-k-w+2 windows, i.e. i ranges over [0, l-k-w+1]): the source's
	// literal bound is l-k-w+1 windows, one fewer, which would drop the
	// last valid window. This is a deliberate, spec-permitted choice
	// (§4.2 allows either inclusive or exclusive variant as long as it is
	// documented), separate from the off-by-one in compress_kmer_array
	// that affects the sorted-array bucket-compression scan, which this
	// map-based Index never performs.
	// len=5, k=2, w=2 => span=3, numWindows = 5-3+1 = 3, windows at i=0,1,2.
	idx, err := Build([]string{"ACGTA"}, 2, 2)
	expect.NoError(t, err)
	total := 0
	for _, c := range idx.Codes() {
		total += len(idx.Bucket(c))
	}
	expect.EQ(t, total, 3)
}

func TestBuildAcrossMultipleReads(t *testing.T) {
	idx, err := Build([]string{"ACGT", "ACGT"}, 2, 2)
	expect.NoError(t, err)
	for _, c := range idx.Codes() {
		bucket := idx.Bucket(c)
		reads := map[int]bool{}
		for _, e := range bucket {
			reads[e.Read] = true
		}
		expect.True(t, len(reads) >= 1)
	}
}
