package dna

import "github.com/gabe-raulet/stringgraph/errs"

// CircularSlice returns the length-l substring of s starting at offset i,
// treating s as circular: s[i] == s[i+len(s)] for any i. It returns the
// slice together with its start offset (i reduced into [0,len(s))) and its
// end offset (the last index covered, reduced modulo len(s); when the
// slice wraps the origin, end < start). Grounded on the reference
// simulator's circular_slice.
func CircularSlice(s string, i, l int) (slice string, start, end int, err error) {
	n := len(s)
	if n == 0 {
		return "", 0, 0, errs.E(errs.InvalidArgument, "dna.CircularSlice", "sequence is empty")
	}
	if l <= 0 {
		return "", 0, 0, errs.E(errs.InvalidArgument, "dna.CircularSlice", "length %d must be positive", l)
	}
	if l > n {
		return "", 0, 0, errs.E(errs.InvalidArgument, "dna.CircularSlice", "length %d exceeds sequence length %d", l, n)
	}

	i = ((i % n) + n) % n
	start = i

	if i+l <= n {
		end = i + l - 1
		slice = s[i : end+1]
	} else {
		end = i + l - n - 1
		slice = s[i:] + s[:end+1]
	}
	return slice, start, end, nil
}
