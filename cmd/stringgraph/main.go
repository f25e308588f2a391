// Command stringgraph simulates a sequencing instance from a synthetic
// reference (or reloads a previously-written one), discovers read overlaps
// two ways — from ground truth and from shared minimizers — and writes
// both the raw and simplified overlap graphs as GML. CLI shape is grounded
// on cmd/bio-fusion/main.go's flag.Usage banner convention; the pipeline
// itself mirrors the reference implementation's main.py/test.py sequence:
// simulate -> write FASTA -> pretty-print layout -> gold overlap graph ->
// prune -> transitive reduction -> GML, plus the parallel seed-based path.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/gabe-raulet/stringgraph/dna"
	"github.com/gabe-raulet/stringgraph/encoding/fasta"
	"github.com/gabe-raulet/stringgraph/encoding/gmlgraph"
	"github.com/gabe-raulet/stringgraph/layout"
	"github.com/gabe-raulet/stringgraph/minimizer"
	"github.com/gabe-raulet/stringgraph/overlap"
	"github.com/gabe-raulet/stringgraph/simulate"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
)

// Minimizer parameters for the seed-extension path; the reference test
// harness used k=31,w=19 for a 100kb instance, scaled down here since the
// default instance sizes exercised by this driver are much smaller.
const (
	seedK = 21
	seedW = 15
)

var reloadFlag = flag.Bool("reload", false, "reload an existing <reads.fa>/<ref.fa> pair instead of simulating a new instance")

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-reload] <reads.fa> <ref.fa> <gml_prefix> <G:int> <D:int> <L:int> <mu:float>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "    <reads.fa>   STR   :: simulated reads FASTA (written, or read with -reload; .gz honored)\n")
	fmt.Fprintf(os.Stderr, "    <ref.fa>     STR   :: reference genome FASTA (written, or read with -reload; .gz honored)\n")
	fmt.Fprintf(os.Stderr, "    <gml_prefix> STR   :: prefix for the four output GML graphs\n")
	fmt.Fprintf(os.Stderr, "    <G>          INT   :: genome length (also the circular wrap length with -reload)\n")
	fmt.Fprintf(os.Stderr, "    <D>          INT   :: average read depth (ignored with -reload)\n")
	fmt.Fprintf(os.Stderr, "    <L>          INT   :: average read length (ignored with -reload)\n")
	fmt.Fprintf(os.Stderr, "    <mu>         FLOAT :: read-length standard deviation (ignored with -reload)\n")
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 7 {
		usage()
		os.Exit(1)
	}

	args := flag.Args()
	readsPath, refPath, gmlPrefix := args[0], args[1], args[2]

	genomeLength, err := strconv.Atoi(args[3])
	if err != nil {
		fail(err)
	}
	depth, err := strconv.Atoi(args[4])
	if err != nil {
		fail(err)
	}
	meanLen, err := strconv.Atoi(args[5])
	if err != nil {
		fail(err)
	}
	sd, err := strconv.ParseFloat(args[6], 64)
	if err != nil {
		fail(err)
	}

	var (
		genome  string
		seqs    []string
		names   []string
		records []overlap.Record
	)

	if *reloadFlag {
		genome, seqs, names, records, err = reloadInstance(readsPath, refPath)
		if err != nil {
			fail(err)
		}
		log.Printf("reloaded %d reads against a %d-bp reference", len(seqs), len(genome))
	} else {
		rnd := rand.New(rand.NewSource(1))

		genome, err = simulate.Genome(genomeLength, rnd)
		if err != nil {
			fail(err)
		}

		seqs, names, records, err = simulate.Reads(genome, simulate.Opts{
			Depth:              float64(depth),
			MeanLength:         float64(meanLen),
			StdDev:             sd,
			Circular:           true,
			ReverseComplements: true,
		}, rnd)
		if err != nil {
			fail(err)
		}

		log.Printf("simulated %d reads from a %d-bp genome (fingerprint %x)", len(seqs), genomeLength, simulate.Fingerprint(genome, seqs))

		if err := writeFasta(refPath, []string{"chrom1"}, []string{genome}); err != nil {
			fail(err)
		}
		if err := writeFasta(readsPath, names, seqs); err != nil {
			fail(err)
		}
	}

	if err := layout.Write(os.Stdout, seqs, records); err != nil {
		fail(err)
	}

	reads, err := dna.NewReadSet(seqs, names)
	if err != nil {
		fail(err)
	}

	gold, err := overlap.Gold(reads, records, genomeLength)
	if err != nil {
		fail(err)
	}
	log.Printf("gold overlap graph: %d edges", gold.NumEdges())
	if err := writeGML(gmlPrefix+".gold.gml", gold); err != nil {
		fail(err)
	}

	if err := writeSimplified(gmlPrefix+".gold_string.gml", gold, "gold string graph"); err != nil {
		fail(err)
	}

	idx, err := minimizer.Build(seqs, seedK, seedW)
	if err != nil {
		fail(err)
	}
	seeds := minimizer.Seeds(idx)
	log.Printf("generated %d seeds from %d minimizer codes", len(seeds), len(idx.Codes()))

	seedGraph, err := overlap.SeedExtend(reads, seeds, seedK)
	if err != nil {
		fail(err)
	}
	log.Printf("seed-extension overlap graph: %d edges", seedGraph.NumEdges())
	if err := writeGML(gmlPrefix+".seed.gml", seedGraph); err != nil {
		fail(err)
	}

	if err := writeSimplified(gmlPrefix+".seed_string.gml", seedGraph, "seed-extension string graph"); err != nil {
		fail(err)
	}
}

func writeSimplified(path string, g *overlap.Graph, label string) error {
	pruned, err := g.Pruned()
	if err != nil {
		return err
	}
	str, err := pruned.NaiveTransitiveReduce(0)
	if err != nil {
		return err
	}
	log.Printf("%s: %d edges", label, str.NumEdges())
	return writeGML(path, str)
}

func reloadInstance(readsPath, refPath string) (genome string, seqs, names []string, records []overlap.Record, err error) {
	refReader, err := openInput(refPath)
	if err != nil {
		return "", nil, nil, nil, err
	}
	defer refReader.Close()
	if genome, err = fasta.ReadGenome(refReader); err != nil {
		return "", nil, nil, nil, err
	}

	readsReader, err := openInput(readsPath)
	if err != nil {
		return "", nil, nil, nil, err
	}
	defer readsReader.Close()
	if names, seqs, err = fasta.ReadAll(readsReader); err != nil {
		return "", nil, nil, nil, err
	}

	reloaded, err := fasta.Reload(genome, names, seqs)
	if err != nil {
		return "", nil, nil, nil, err
	}
	records = make([]overlap.Record, len(reloaded))
	for i, r := range reloaded {
		records[i] = overlap.Record{ID: r.ID, Start: r.Start, Rev: r.Rev}
	}
	return genome, seqs, names, records, nil
}

func writeFasta(path string, names, seqs []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fasta.Write(f, names, seqs)
}

func writeGML(path string, g *overlap.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gmlgraph.Write(f, g.Export(), "stringgraph")
}

// openInput opens path for reading, transparently decompressing it if the
// name ends in ".gz" — the same gzip wrapping the teacher's FASTQ reader
// applied to compressed input.
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzipFile{Reader: gz, f: f}, nil
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	g.Reader.Close()
	return g.f.Close()
}

func fail(err error) {
	log.Error.Printf("%v", err)
	os.Exit(1)
}
