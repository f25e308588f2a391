package layout

import (
	"strings"
	"testing"

	"github.com/gabe-raulet/stringgraph/overlap"
	"github.com/grailbio/testutil/expect"
)

func TestWriteForwardAndReverse(t *testing.T) {
	seqs := []string{"ACGT", "TTTT"}
	records := []overlap.Record{
		{ID: 1, Start: 2, Rev: true},
		{ID: 0, Start: 0, Rev: false},
	}
	var sb strings.Builder
	expect.NoError(t, Write(&sb, seqs, records))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	expect.EQ(t, len(lines), 2)
	// Sorted by Start: read 0 (start 0) first, then read 1 (start 2).
	expect.True(t, strings.Contains(lines[0], "ACGT>"))
	expect.True(t, strings.Contains(lines[1], "<AAAA"))
}

func TestWriteRejectsLengthMismatch(t *testing.T) {
	err := Write(&strings.Builder{}, []string{"A"}, nil)
	expect.NotNil(t, err)
}
