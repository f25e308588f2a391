package simulate

import (
	"math/rand"

	"github.com/dgryski/go-farm"

	"github.com/gabe-raulet/stringgraph/dna"
	"github.com/gabe-raulet/stringgraph/encoding/fasta"
	"github.com/gabe-raulet/stringgraph/errs"
	"github.com/gabe-raulet/stringgraph/overlap"
)

// Opts configures Reads.
type Opts struct {
	Depth              float64 // average sequencing depth
	MeanLength         float64
	StdDev             float64
	Circular           bool // treat genome as circular
	ReverseComplements bool // simulate reverse-complemented reads with 1/2 probability
}

// Fingerprint is a content hash of a simulated instance (genome plus every
// read), useful for confirming two runs reproduced the same data from the
// same seed without diffing the full FASTA text.
func Fingerprint(genome string, seqs []string) uint64 {
	h := farm.Hash64([]byte(genome))
	for _, s := range seqs {
		h = farm.Hash64WithSeed([]byte(s), h)
	}
	return h
}

// Reads simulates read_depth*len(genome)/mean_length perfect reads from
// genome, returning each read's sequence, its round-trip FASTA name (per
// encoding/fasta.FormatReadName), and its ground-truth placement. Read
// lengths are drawn from N(MeanLength, StdDev), redrawn until positive (and,
// for a linear genome, until the read fits without running off the end).
func Reads(genome string, opts Opts, rnd *rand.Rand) (seqs, names []string, records []overlap.Record, err error) {
	n := len(genome)
	if n == 0 {
		return nil, nil, nil, errs.E(errs.InvalidArgument, "simulate.Reads", "genome is empty")
	}
	if opts.MeanLength <= 0 {
		return nil, nil, nil, errs.E(errs.InvalidArgument, "simulate.Reads", "mean length %v must be positive", opts.MeanLength)
	}
	if !opts.Circular && int(opts.MeanLength) >= n {
		return nil, nil, nil, errs.E(errs.InvalidArgument, "simulate.Reads", "mean length %v too large for a linear genome of length %d", opts.MeanLength, n)
	}

	numReads := int((float64(n) * opts.Depth) / opts.MeanLength)
	seqs = make([]string, 0, numReads)
	names = make([]string, 0, numReads)
	records = make([]overlap.Record, 0, numReads)

	for i := 0; i < numReads; i++ {
		var readPos, readLen, start, end int
		var seq string

		if opts.Circular {
			readPos = rnd.Intn(n)
			for {
				readLen = int(rnd.NormFloat64()*opts.StdDev + opts.MeanLength)
				if readLen > 0 {
					break
				}
			}
			if seq, start, end, err = dna.CircularSlice(genome, readPos, readLen); err != nil {
				return nil, nil, nil, err
			}
		} else {
			readPos = rnd.Intn(n - int(opts.MeanLength))
			for {
				readLen = int(rnd.NormFloat64()*opts.StdDev + opts.MeanLength)
				if readLen > 0 && readPos+readLen <= n {
					break
				}
			}
			start = readPos
			end = readPos + readLen - 1
			seq = genome[readPos : end+1]
		}

		rev := opts.ReverseComplements && rnd.Intn(2) == 1
		name := fasta.FormatReadName(i, start, end, readLen, rev)

		if rev {
			if seq, err = dna.ReverseComplement(seq); err != nil {
				return nil, nil, nil, err
			}
		}

		seqs = append(seqs, seq)
		names = append(names, name)
		records = append(records, overlap.Record{ID: i, Start: start, Rev: rev})
	}

	return seqs, names, records, nil
}
