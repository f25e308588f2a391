// Package layout prints an ASCII visualization of a set of reads
// positioned according to their ground-truth (or inferred) placement on
// the reference, one line per read ordered by start offset. Grounded on
// the reference implementation's pretty_layout.
package layout

import (
	"fmt"
	"io"
	"sort"

	"github.com/gabe-raulet/stringgraph/dna"
	"github.com/gabe-raulet/stringgraph/errs"
	"github.com/gabe-raulet/stringgraph/overlap"
)

// Write prints, for each read in records (sorted by Start), a line
// "{id:>4}: " followed by Start spaces and "<" + reverse_complement(seq)
// for a reverse read, or Start+1 spaces and seq + ">" for a forward one, so
// that both kinds of read put their first base in the same column.
func Write(w io.Writer, seqs []string, records []overlap.Record) error {
	if len(seqs) != len(records) {
		return errs.E(errs.InvalidArgument, "layout.Write", "len(seqs)=%d != len(records)=%d", len(seqs), len(records))
	}

	sorted := append([]overlap.Record(nil), records...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	for _, r := range sorted {
		if r.ID < 0 || r.ID >= len(seqs) {
			return errs.E(errs.IndexOutOfRange, "layout.Write", "record id %d out of range [0,%d)", r.ID, len(seqs))
		}
		seq := seqs[r.ID]

		var body string
		if r.Rev {
			rc, err := dna.ReverseComplement(seq)
			if err != nil {
				return err
			}
			body = spaces(r.Start) + "<" + rc
		} else {
			body = spaces(r.Start+1) + seq + ">"
		}

		if _, err := fmt.Fprintf(w, "%4d: %s\n", r.ID, body); err != nil {
			return err
		}
	}
	return nil
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
