package main

/*
masc-design searches a recoded genome for MASC-PCR primer candidates.
Given the recoded genome, its wildtype reference, and a list of target
anchors, it reports for each discriminatory target the best-scoring
mutant primer and its wildtype counterpart, and for each common target
the best-scoring primer binding both genomes.
*/

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/mascpcr/masc/config"
	"github.com/mascpcr/masc/encoding/fasta"
	"github.com/mascpcr/masc/genome"
	"github.com/mascpcr/masc/primercandidate"
	"github.com/mascpcr/masc/thermo"
)

var (
	configPath  = flag.String("config", "", "Optional YAML settings file; built-in defaults are used when absent")
	edgesPath   = flag.String("edges", "", "Optional file of 0-based genome positions primer footprints must not cross, one per line")
	outPath     = flag.String("out", "masc-design.tsv", "Output TSV path")
	parallelism = flag.Int("parallelism", 0, "Maximum number of simultaneous search jobs; 0 = one per target")

	tmMin            = flag.Float64("tm-min", primercandidate.DefaultOpts.TmMin, "Lowest acceptable primer melting temperature, degrees C")
	tmMax            = flag.Float64("tm-max", primercandidate.DefaultOpts.TmMax, "Highest acceptable primer melting temperature, degrees C")
	spuriousTmClip   = flag.Float64("spurious-tm-clip", primercandidate.DefaultOpts.SpuriousTmClip, "Highest tolerated hairpin/homodimer melting temperature, degrees C")
	minSize          = flag.Int("min-size", primercandidate.DefaultOpts.MinSize, "Shortest primer length, bp")
	maxSize          = flag.Int("max-size", primercandidate.DefaultOpts.MaxSize, "Longest primer length, bp")
	minNumMismatches = flag.Int("min-num-mismatches", primercandidate.DefaultOpts.MinNumMismatches, "Minimum designed mismatches a discriminatory footprint must cover")
	lenientMode      = flag.Bool("lenient", primercandidate.DefaultOpts.LenientMode, "Skip thermodynamic rejection for discriminatory searches")
)

// applyFlagOverrides copies explicitly-set search flags over the
// config-file values; unset flags leave the config alone.
func applyFlagOverrides(opts *primercandidate.Opts) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tm-min":
			opts.TmMin = *tmMin
		case "tm-max":
			opts.TmMax = *tmMax
		case "spurious-tm-clip":
			opts.SpuriousTmClip = *spuriousTmClip
		case "min-size":
			opts.MinSize = *minSize
		case "max-size":
			opts.MaxSize = *maxSize
		case "min-num-mismatches":
			opts.MinNumMismatches = *minNumMismatches
		case "lenient":
			opts.LenientMode = *lenientMode
		}
	})
}

func mascDesignUsage() {
	fmt.Printf("Usage: %s [OPTIONS] genome.fa reference.fa targets.tsv\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func loadGenome(path string) string {
	seqs, err := fasta.Open(path)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	if len(seqs) != 1 {
		log.Fatalf("%s: expected a single sequence, got %d", path, len(seqs))
	}
	if err := genome.ValidateBases(seqs[0].Bases); err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	return seqs[0].Bases
}

func main() {
	flag.Usage = mascDesignUsage
	shutdown := grail.Init()
	defer shutdown()

	positionalArgs := flag.Args()
	if len(positionalArgs) != 3 {
		log.Fatalf("Expected exactly 3 positional arguments (genome.fa, reference.fa, targets.tsv); please check flag syntax: '%s'", strings.Join(positionalArgs, " "))
	}
	ctx := vcontext.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	opts := cfg.Opts()
	applyFlagOverrides(&opts)
	if err := opts.Validate(); err != nil {
		log.Fatalf("%v", err)
	}
	cond, err := cfg.Conditions()
	if err != nil {
		log.Fatalf("%v", err)
	}

	genomeSeq := loadGenome(positionalArgs[0])
	refSeq := loadGenome(positionalArgs[1])
	luts, err := genome.BuildLUTSet(genomeSeq, refSeq)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *edgesPath != "" {
		edges, err := readEdges(*edgesPath, len(genomeSeq))
		if err != nil {
			log.Fatalf("%s: %v", *edgesPath, err)
		}
		for _, pos := range edges {
			luts.MarkEdge(pos)
		}
	}
	targets, err := readTargets(positionalArgs[2])
	if err != nil {
		log.Fatalf("%s: %v", positionalArgs[2], err)
	}

	oracle := thermo.NewNN(cond)
	results, stats, err := primercandidate.RunBatch(
		targets, genomeSeq, refSeq, luts, oracle, &opts, *parallelism)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := primercandidate.WriteResultsTSV(ctx, *outPath, results); err != nil {
		log.Fatalf("%v", err)
	}
	nErr := 0
	for _, r := range results {
		if r.Err != nil {
			nErr++
			log.Error.Printf("target idx %d: %v", r.Target.Idx, r.Err)
		}
	}
	log.Printf("%d/%d targets found a primer (%d windows examined, %d errors)",
		stats.Found, stats.Anchors, stats.Windows, nErr)
	if nErr > 0 {
		log.Fatalf("%d targets failed; see errors above", nErr)
	}
}
