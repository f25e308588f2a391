package fasta

import (
	"strings"
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestReadAllBasic(t *testing.T) {
	in := ">r0 description\nACGT\nACGT\n>r1\nTTTT\n"
	names, seqs, err := ReadAll(strings.NewReader(in))
	expect.NoError(t, err)
	expect.EQ(t, len(names), 2)
	expect.EQ(t, names[0], "r0 description")
	expect.EQ(t, seqs[0], "ACGTACGT")
	expect.EQ(t, names[1], "r1")
	expect.EQ(t, seqs[1], "TTTT")
}

func TestReadAllRejectsEmptyInput(t *testing.T) {
	_, _, err := ReadAll(strings.NewReader(""))
	expect.NotNil(t, err)
}

func TestReadGenomeRejectsMultiSequence(t *testing.T) {
	_, err := ReadGenome(strings.NewReader(">a\nACGT\n>b\nTTTT\n"))
	expect.NotNil(t, err)
}

func TestReadGenomeSingleSequence(t *testing.T) {
	g, err := ReadGenome(strings.NewReader(">chr1\nACGTACGT\n"))
	expect.NoError(t, err)
	expect.EQ(t, g, "ACGTACGT")
}

func TestWriteReadRoundTrip(t *testing.T) {
	names := []string{"a", "b"}
	seqs := []string{"ACGT", "TTTT"}
	var sb strings.Builder
	expect.NoError(t, Write(&sb, names, seqs))

	gotNames, gotSeqs, err := ReadAll(strings.NewReader(sb.String()))
	expect.NoError(t, err)
	expect.EQ(t, gotNames, names)
	expect.EQ(t, gotSeqs, seqs)
}

func TestFormatParseReadNameRoundTripNoWrap(t *testing.T) {
	name := FormatReadName(3, 5, 12, 8, false)
	expect.EQ(t, name, "R3 | coords :: [5..12] | length :: 8 | rev :: False")

	id, start, end, length, rev, err := ParseReadName(name)
	expect.NoError(t, err)
	expect.EQ(t, id, 3)
	expect.EQ(t, start, 5)
	expect.EQ(t, end, 12)
	expect.EQ(t, length, 8)
	expect.False(t, rev)
}

func TestFormatParseReadNameRoundTripWrapped(t *testing.T) {
	name := FormatReadName(7, 15, 3, 8, true)
	expect.EQ(t, name, "R7 | coords :: [15..) ++ [..3] | length :: 8 | rev :: True")

	id, start, end, length, rev, err := ParseReadName(name)
	expect.NoError(t, err)
	expect.EQ(t, id, 7)
	expect.EQ(t, start, 15)
	expect.EQ(t, end, 3)
	expect.EQ(t, length, 8)
	expect.True(t, rev)
}

func TestReloadAcceptsConsistentReads(t *testing.T) {
	genome := "AAAACCCCGGGGTTTT"
	name := FormatReadName(0, 4, 11, 8, false)
	reads, err := Reload(genome, []string{name}, []string{"CCCCGGGG"})
	expect.NoError(t, err)
	expect.EQ(t, len(reads), 1)
	expect.EQ(t, reads[0].Start, 4)
	expect.False(t, reads[0].Rev)
}

func TestReloadRejectsInconsistentSequence(t *testing.T) {
	genome := "AAAACCCCGGGGTTTT"
	name := FormatReadName(0, 4, 11, 8, false)
	_, err := Reload(genome, []string{name}, []string{"GGGGGGGG"})
	expect.NotNil(t, err)
}

func TestReloadHandlesReverseComplement(t *testing.T) {
	genome := "AAAACCCCGGGGTTTT"
	// genome[4:12) = "CCCCGGGG"; its revcomp is "CCCCGGGG" reversed+complemented.
	rc := "CCCCGGGG"
	// Build expected rc manually: complement then reverse.
	comp := map[byte]byte{'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A'}
	buf := make([]byte, len(rc))
	for i := 0; i < len(rc); i++ {
		buf[len(rc)-1-i] = comp[rc[i]]
	}
	name := FormatReadName(0, 4, 11, 8, true)
	reads, err := Reload(genome, []string{name}, []string{string(buf)})
	expect.NoError(t, err)
	expect.True(t, reads[0].Rev)
}
