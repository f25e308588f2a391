// Package simulate generates a synthetic reference genome and perfect
// reads drawn from it, the seeded collaborator feeding the pipeline's
// assembly builders in the absence of real sequencing data. Grounded on
// the reference implementation's create_random_genome/create_reads, using
// a caller-supplied *rand.Rand throughout (never the global math/rand
// functions), the convention encoding/fastq/downsample.go follows for
// reproducible sampling.
package simulate

import (
	"math/rand"

	"github.com/gabe-raulet/stringgraph/errs"
)

var bases = [4]byte{'A', 'C', 'G', 'T'}

// Genome returns a uniformly random sequence of n nucleotides.
func Genome(n int, rnd *rand.Rand) (string, error) {
	if n <= 0 {
		return "", errs.E(errs.InvalidArgument, "simulate.Genome", "size %d must be positive", n)
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = bases[rnd.Intn(4)]
	}
	return string(buf), nil
}
