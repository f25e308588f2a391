// Package errs defines the fatal, Kind-tagged error values raised at the
// core boundary of the assembly pipeline. Every error the core packages
// (dna, minimizer, overlap) raise carries one of the Kinds below; callers
// that need to distinguish error classes should use the Is helper rather
// than string-matching messages.
//
// Construction and accumulation are built directly on
// github.com/grailbio/base/errors, the same package the teacher's
// encoding/fasta, encoding/fastq, and markduplicates code import for this:
// E delegates its (cause, op, detail) composition to errors.E exactly the
// way fastq/downsample.go's errp.Set(errors.E(err, "gzip close", fh.path))
// call does, and Once is that package's own accumulate-first-error type,
// reused directly rather than reimplemented.
package errs

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Kind classifies why an operation failed.
type Kind int

const (
	// Other is the zero value; avoid constructing errors with it directly.
	Other Kind = iota
	// InvalidArgument means a non-positive size, a length mismatch between
	// parallel arrays, or a k/w parameter outside its valid range.
	InvalidArgument
	// IndexOutOfRange means a read or vertex index fell outside [0, N).
	IndexOutOfRange
	// InvalidBase means a non-ACGT symbol appeared in a k-mer or read.
	InvalidBase
	// InconsistentInstance means a reloaded read's sequence or coordinates
	// do not match the reference it was reloaded against.
	InconsistentInstance
	// MalformedInput means a FASTA parse failure or an input that violates
	// a single-sequence requirement.
	MalformedInput
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case IndexOutOfRange:
		return "index out of range"
	case InvalidBase:
		return "invalid base"
	case InconsistentInstance:
		return "inconsistent instance"
	case MalformedInput:
		return "malformed input"
	default:
		return "error"
	}
}

// Error is the concrete error type produced by E. It wraps the
// *errors.Error built by github.com/grailbio/base/errors, so Error() and
// errors.Is/errors.As both see through to the underlying cause; Kind is
// this package's own domain tag, orthogonal to base/errors' own Kind
// taxonomy (NotExist and friends), which this pipeline has no use for.
type Error struct {
	Kind Kind
	base error
}

func (e *Error) Error() string { return e.base.Error() }

// Unwrap allows errors.Is/errors.As to see through to the wrapped cause.
func (e *Error) Unwrap() error { return e.base }

// E builds an *Error of kind k. op names the failing operation
// (e.g. "dna.KmerCode", "overlap.AddOverlap"); msg is formatted with
// fmt.Sprintf when args are supplied. If the last element of args is an
// error, it is passed to errors.E as the wrapped cause, first among its
// arguments, matching the teacher's own errors.E(cause, op, detail) call
// order.
func E(k Kind, op, msg string, args ...interface{}) error {
	var cause error
	if len(args) > 0 {
		if c, ok := args[len(args)-1].(error); ok {
			cause = c
			args = args[:len(args)-1]
		}
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var eargs []interface{}
	if cause != nil {
		eargs = append(eargs, cause)
	}
	eargs = append(eargs, op)
	if msg != "" {
		eargs = append(eargs, msg)
	}

	return &Error{Kind: k, base: errors.E(eargs...)}
}

// Is reports whether err (or any error it wraps) is an *Error of kind k.
func Is(err error, k Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Kind == k {
				return true
			}
			err = e.base
			continue
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Once accumulates errors across a sequence of fallible cleanup calls
// (closing several files, flushing several writers) and reports only the
// first one. It is github.com/grailbio/base/errors.Once itself, the type
// the teacher's own I/O paths (encoding/fastq, encoding/pam, cmd/bio-fusion)
// use for exactly this purpose.
type Once = errors.Once
