package dna

import "github.com/gabe-raulet/stringgraph/errs"

// ReadSet is an ordered, immutable table of DNA reads. Reads are indexed
// 0..N-1; once constructed, a ReadSet is never mutated, matching the data
// model's "reads are immutable once created" rule. Names are optional and
// exist only to round-trip through FASTA; the core algorithms never
// consult them.
type ReadSet struct {
	seqs  []string
	names []string
}

// NewReadSet validates every sequence against the DNA alphabet and returns
// a ReadSet owning them. names may be nil; if non-nil it must have the same
// length as seqs.
func NewReadSet(seqs []string, names []string) (*ReadSet, error) {
	if names != nil && len(names) != len(seqs) {
		return nil, errs.E(errs.InvalidArgument, "dna.NewReadSet", "len(names)=%d != len(seqs)=%d", len(names), len(seqs))
	}
	for i, s := range seqs {
		if err := ValidateSeq(s); err != nil {
			return nil, errs.E(errs.InvalidBase, "dna.NewReadSet", "read %d: %v", i, err)
		}
	}
	rs := &ReadSet{seqs: append([]string(nil), seqs...)}
	if names != nil {
		rs.names = append([]string(nil), names...)
	}
	return rs, nil
}

// Len returns the number of reads.
func (rs *ReadSet) Len() int { return len(rs.seqs) }

// Seq returns the sequence of read i.
func (rs *ReadSet) Seq(i int) string { return rs.seqs[i] }

// Name returns the name of read i, or "" if names were not supplied.
func (rs *ReadSet) Name(i int) string {
	if rs.names == nil {
		return ""
	}
	return rs.names[i]
}

// Seqs returns the underlying sequence slice. Callers must not mutate it.
func (rs *ReadSet) Seqs() []string { return rs.seqs }
