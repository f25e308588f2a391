// Package dna implements the canonical k-mer arithmetic the rest of the
// assembly pipeline builds on: base encoding, reverse complementation, and
// canonical k-mer codes. It is the Go equivalent of the bit-packed kmer
// encoding in the teacher's fusion.Kmer type (fusion/kmer.go), generalized
// from the teacher's fixed "kmersAtPos" shape to a pair of free functions
// that any caller (minimizer, overlap) can use directly on read substrings.
package dna

import (
	"github.com/gabe-raulet/stringgraph/errs"
)

// MaxK is the largest k-mer length supported: 4^31 fits in a uint64, while
// 4^32 does not.
const MaxK = 31

// baseCode maps an ASCII byte to its 2-bit code, or -1 if the byte is not
// one of A, C, G, T. Only upper-case symbols are in the alphabet per the
// data model; anything else is a configuration error, not silently
// tolerated or case-folded.
var baseCode [256]int8

// baseChar is the inverse of baseCode for the four valid codes.
var baseChar = [4]byte{'A', 'C', 'G', 'T'}

func init() {
	for i := range baseCode {
		baseCode[i] = -1
	}
	baseCode['A'] = 0
	baseCode['C'] = 1
	baseCode['G'] = 2
	baseCode['T'] = 3
}

// complementCode maps a 2-bit base code to the 2-bit code of its
// Watson-Crick complement: A<->T, C<->G. Because A=0,C=1,G=2,T=3, the
// complement of code b is simply b^3.
func complementCode(b int8) int8 { return b ^ 3 }

// ValidateSeq checks that every byte of s is one of A, C, G, T, returning an
// InvalidBase error naming the offending byte's position otherwise.
// ReverseComplement and KmerCode make the same check on their own input;
// CodeToKmer works on codes and needs none.
func ValidateSeq(s string) error {
	for i := 0; i < len(s); i++ {
		if baseCode[s[i]] < 0 {
			return errs.E(errs.InvalidBase, "dna.ValidateSeq", "byte %q at position %d is not one of A,C,G,T", s[i], i)
		}
	}
	return nil
}

// ReverseComplement returns s reversed with each base complemented
// (A<->T, C<->G). It fails with InvalidBase on any non-ACGT symbol.
func ReverseComplement(s string) (string, error) {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := baseCode[s[i]]
		if b < 0 {
			return "", errs.E(errs.InvalidBase, "dna.ReverseComplement", "byte %q at position %d is not one of A,C,G,T", s[i], i)
		}
		out[n-1-i] = baseChar[complementCode(b)]
	}
	return string(out), nil
}

// KmerCode computes the canonical code of the k-mer s: the smaller of
// code(s) and code(reverse_complement(s)), big-endian over the 2-bit base
// codes (A=0,C=1,G=2,T=3). The returned bool is true iff the
// reverse-complement strand's code was the smaller one; ties (a
// palindromic k-mer) resolve to rev=false, the forward strand winning.
//
// KmerCode fails with InvalidArgument if len(s) > MaxK, and with
// InvalidBase on any non-ACGT symbol.
func KmerCode(s string) (uint64, bool, error) {
	k := len(s)
	if k == 0 || k > MaxK {
		return 0, false, errs.E(errs.InvalidArgument, "dna.KmerCode", "k-mer length %d must be in [1,%d]", k, MaxK)
	}
	var forward, reverse uint64
	for i := 0; i < k; i++ {
		b := baseCode[s[i]]
		if b < 0 {
			return 0, false, errs.E(errs.InvalidBase, "dna.KmerCode", "byte %q at position %d is not one of A,C,G,T", s[i], i)
		}
		rb := baseCode[s[k-1-i]]
		forward = forward<<2 | uint64(b)
		reverse = reverse<<2 | uint64(complementCode(rb))
	}
	if reverse < forward {
		return reverse, true, nil
	}
	return forward, false, nil
}

// CodeToKmer returns the k-mer string of the given code, regardless of
// whether the code is canonical. It is the inverse of the forward encoding
// used inside KmerCode, not of KmerCode itself (KmerCode is not invertible
// without the rev flag).
func CodeToKmer(code uint64, k int) (string, error) {
	if k <= 0 || k > MaxK {
		return "", errs.E(errs.InvalidArgument, "dna.CodeToKmer", "k-mer length %d must be in [1,%d]", k, MaxK)
	}
	buf := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		buf[i] = baseChar[code&3]
		code >>= 2
	}
	return string(buf), nil
}

// IsACGT reports whether s contains only A, C, G, T characters.
func IsACGT(s string) bool {
	return ValidateSeq(s) == nil
}
