// Package minimizer implements minimizer selection over a set of reads
// (C2) and the seed pairs a shared minimizer implies (C3). The window scan
// and per-read dedup rule are grounded on the original compress_kmer_array /
// minimizers logic in AssemblyProblem's FindOverlaps.py, generalized the way
// fusion/kmer_index.go generalizes a raw kmer scan into an indexed lookup
// structure, but keeping the lexicographically-smallest-*string* selection
// rule exactly as the original defines it (not smallest canonical code).
package minimizer

import (
	"sort"

	"github.com/gabe-raulet/stringgraph/dna"
	"github.com/gabe-raulet/stringgraph/errs"
)

// Entry is one occurrence of a minimizer inside a particular read.
type Entry struct {
	Read int  // read index the minimizer was selected from
	Pos  int  // offset within the read of the selected k-mer
	Rev  bool // true if the read's forward strand matched the rev-comp side
}

// Index groups, by canonical k-mer code, every read position at which that
// k-mer was selected as a window minimizer.
type Index struct {
	K, W    int
	codes   []uint64
	buckets map[uint64][]Entry
}

// Codes returns the set of minimizer codes with at least one hit, sorted
// ascending. Iterating buckets in this order is what makes seed generation
// (C3) deterministic given deterministic input, since Go map iteration order
// is not.
func (idx *Index) Codes() []uint64 { return idx.codes }

// Bucket returns the entries recorded under code, or nil.
func (idx *Index) Bucket(code uint64) []Entry { return idx.buckets[code] }

// Build scans every read in seqs for window minimizers of length k over a
// sliding window of w consecutive k-mer start positions, and returns the
// resulting index. Reads shorter than k+w-1 contribute nothing. k and w
// must both be positive.
func Build(seqs []string, k, w int) (*Index, error) {
	if k <= 0 || k > dna.MaxK {
		return nil, errs.E(errs.InvalidArgument, "minimizer.Build", "k=%d must be in [1,%d]", k, dna.MaxK)
	}
	if w <= 0 {
		return nil, errs.E(errs.InvalidArgument, "minimizer.Build", "w=%d must be positive", w)
	}

	idx := &Index{K: k, W: w, buckets: make(map[uint64][]Entry)}

	for r, s := range seqs {
		l := len(s)
		span := k + w - 1
		if l < span {
			continue
		}
		seen := make(map[string]struct{})

		numWindows := l - span + 1
		for i := 0; i < numWindows; i++ {
			// Select the lexicographically-smallest k-mer string among the
			// w candidates starting at offsets i..i+w-1; ties keep the
			// earliest offset (the first minimal string encountered).
			bestOff := i
			best := s[i : i+k]
			for j := 1; j < w; j++ {
				off := i + j
				cand := s[off : off+k]
				if cand < best {
					best = cand
					bestOff = off
				}
			}

			if _, dup := seen[best]; dup {
				continue
			}
			seen[best] = struct{}{}

			code, rev, err := dna.KmerCode(best)
			if err != nil {
				return nil, errs.E(errs.InvalidBase, "minimizer.Build", "read %d: %v", r, err)
			}
			idx.buckets[code] = append(idx.buckets[code], Entry{Read: r, Pos: bestOff, Rev: rev})
		}
	}

	idx.codes = make([]uint64, 0, len(idx.buckets))
	for c := range idx.buckets {
		idx.codes = append(idx.codes, c)
	}
	sort.Slice(idx.codes, func(i, j int) bool { return idx.codes[i] < idx.codes[j] })

	return idx, nil
}
