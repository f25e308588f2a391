// Package fasta reads and writes FASTA-formatted sequence data and the
// read-name grammar the simulator and re-loader round-trip through. FASTA
// files consist of a number of named sequences that may be interrupted by
// newlines:
//
// >chr7
// ACGTAC
// GAGGAC
// >chr8
// ACGT
//
// Unlike a reference-lookup FASTA reader, ReadAll keeps the full text after
// '>' as the record name rather than truncating at the first space: read
// names here are themselves structured descriptions ("R3 | coords :: ...")
// that must round-trip whole.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gabe-raulet/stringgraph/dna"
	"github.com/gabe-raulet/stringgraph/errs"
)

const (
	mib            = 1024 * 1024
	bufferInitSize = 300 * mib
)

// ReadAll parses every record out of r, in file order, preserving
// duplicate names (read names are not assumed unique).
func ReadAll(r io.Reader) (names, seqs []string, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, bufferInitSize)

	var name string
	var seq strings.Builder
	var have bool

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if have {
				names = append(names, name)
				seqs = append(seqs, seq.String())
				seq.Reset()
			}
			name = line[1:]
			have = true
		} else {
			seq.WriteString(line)
		}
	}
	if scanner.Err() != nil {
		return nil, nil, errs.E(errs.MalformedInput, "fasta.ReadAll", "reading FASTA data", errors.Wrap(scanner.Err(), "couldn't read FASTA data"))
	}
	if !have {
		return nil, nil, errs.E(errs.MalformedInput, "fasta.ReadAll", "no FASTA records found")
	}
	names = append(names, name)
	seqs = append(seqs, seq.String())
	return names, seqs, nil
}

// ReadGenome reads r as a single-sequence FASTA file and returns its
// sequence. It fails with MalformedInput if r does not contain exactly one
// record: the system is single-chromosome by design.
func ReadGenome(r io.Reader) (string, error) {
	_, seqs, err := ReadAll(r)
	if err != nil {
		return "", err
	}
	if len(seqs) != 1 {
		return "", errs.E(errs.MalformedInput, "fasta.ReadGenome", "expected exactly one sequence, got %d", len(seqs))
	}
	return seqs[0], nil
}

// Write emits one ">name\n" header followed by the sequence on a single
// line, for each of names/seqs in order.
func Write(w io.Writer, names, seqs []string) error {
	if len(names) != len(seqs) {
		return errs.E(errs.InvalidArgument, "fasta.Write", "len(names)=%d != len(seqs)=%d", len(names), len(seqs))
	}
	for i := range names {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", names[i], seqs[i]); err != nil {
			return err
		}
	}
	return nil
}

// FormatReadName formats a read's name per the problem re-loader's grammar:
//
//	R{i} | coords :: [{s}..{e}] | length :: {L} | rev :: {True|False}
//
// with coords switching to the wrapped form "[{s}..) ++ [..{e}]" whenever
// the slice crossed the circular origin (start > end).
func FormatReadName(i, start, end, length int, rev bool) string {
	var coords string
	if start <= end {
		coords = fmt.Sprintf("[%d..%d]", start, end)
	} else {
		coords = fmt.Sprintf("[%d..) ++ [..%d]", start, end)
	}
	revStr := "False"
	if rev {
		revStr = "True"
	}
	return fmt.Sprintf("R%d | coords :: %s | length :: %d | rev :: %s", i, coords, length, revStr)
}

// ParseReadName parses a name produced by FormatReadName back into its
// fields.
func ParseReadName(name string) (id, start, end, length int, rev bool, err error) {
	fields := strings.Split(name, "|")
	if len(fields) != 4 {
		return 0, 0, 0, 0, false, errs.E(errs.MalformedInput, "fasta.ParseReadName", "expected 4 '|'-separated fields in %q, got %d", name, len(fields))
	}

	head := strings.TrimSpace(fields[0])
	if !strings.HasPrefix(head, "R") {
		return 0, 0, 0, 0, false, errs.E(errs.MalformedInput, "fasta.ParseReadName", "malformed read id in %q", name)
	}
	if id, err = strconv.Atoi(head[1:]); err != nil {
		return 0, 0, 0, 0, false, errs.E(errs.MalformedInput, "fasta.ParseReadName", "malformed read id in %q", name, err)
	}

	coordsField := strings.TrimSpace(fields[1])
	coordsField = strings.TrimSpace(strings.TrimPrefix(coordsField, "coords ::"))
	if start, end, err = parseCoords(coordsField); err != nil {
		return 0, 0, 0, 0, false, err
	}

	lengthField := strings.TrimSpace(fields[2])
	lengthField = strings.TrimSpace(strings.TrimPrefix(lengthField, "length ::"))
	if length, err = strconv.Atoi(lengthField); err != nil {
		return 0, 0, 0, 0, false, errs.E(errs.MalformedInput, "fasta.ParseReadName", "malformed length in %q", name, err)
	}

	revField := strings.TrimSpace(fields[3])
	revField = strings.TrimSpace(strings.TrimPrefix(revField, "rev ::"))
	switch revField {
	case "True":
		rev = true
	case "False":
		rev = false
	default:
		return 0, 0, 0, 0, false, errs.E(errs.MalformedInput, "fasta.ParseReadName", "malformed rev field in %q", name)
	}

	return id, start, end, length, rev, nil
}

func parseCoords(s string) (start, end int, err error) {
	if strings.Contains(s, "++") {
		halves := strings.SplitN(s, "++", 2)
		left := strings.TrimSpace(halves[0])
		left = strings.TrimSuffix(strings.TrimPrefix(left, "["), "..)")
		if start, err = strconv.Atoi(left); err != nil {
			return 0, 0, errs.E(errs.MalformedInput, "fasta.parseCoords", "malformed wrapped coords %q", s, err)
		}
		right := strings.TrimSpace(halves[1])
		right = strings.TrimSuffix(strings.TrimPrefix(right, "[.."), "]")
		if end, err = strconv.Atoi(right); err != nil {
			return 0, 0, errs.E(errs.MalformedInput, "fasta.parseCoords", "malformed wrapped coords %q", s, err)
		}
		return start, end, nil
	}

	trimmed := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	se := strings.SplitN(trimmed, "..", 2)
	if len(se) != 2 {
		return 0, 0, errs.E(errs.MalformedInput, "fasta.parseCoords", "malformed coords %q", s)
	}
	if start, err = strconv.Atoi(se[0]); err != nil {
		return 0, 0, errs.E(errs.MalformedInput, "fasta.parseCoords", "malformed coords %q", s, err)
	}
	if end, err = strconv.Atoi(se[1]); err != nil {
		return 0, 0, errs.E(errs.MalformedInput, "fasta.parseCoords", "malformed coords %q", s, err)
	}
	return start, end, nil
}

// ReloadedRead is one read's ground-truth placement recovered by Reload.
type ReloadedRead struct {
	ID    int
	Start int
	Rev   bool
}

// Reload cross-checks every read name against genome and returns each
// read's recovered placement. For read i, the name's coordinate and rev
// fields are used to recompute the expected sequence via dna.CircularSlice
// against genome; any mismatch (wrong sequence or a start offset that
// doesn't match the name's claimed coordinate) is a fatal
// InconsistentInstance error, matching the re-loader's cross-check
// requirement.
func Reload(genome string, names, seqs []string) ([]ReloadedRead, error) {
	if len(names) != len(seqs) {
		return nil, errs.E(errs.InvalidArgument, "fasta.Reload", "len(names)=%d != len(seqs)=%d", len(names), len(seqs))
	}

	out := make([]ReloadedRead, len(names))
	for i, name := range names {
		_, start, _, _, rev, err := ParseReadName(name)
		if err != nil {
			return nil, err
		}

		expected, startCheck, _, err := dna.CircularSlice(genome, start, len(seqs[i]))
		if err != nil {
			return nil, err
		}
		if rev {
			if expected, err = dna.ReverseComplement(expected); err != nil {
				return nil, err
			}
		}
		if expected != seqs[i] || startCheck != start {
			return nil, errs.E(errs.InconsistentInstance, "fasta.Reload", "read %d (%q) does not match reference", i, name)
		}

		out[i] = ReloadedRead{ID: i, Start: start, Rev: rev}
	}
	return out, nil
}
