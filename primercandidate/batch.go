package primercandidate

import (
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/traverse"
	"github.com/mascpcr/masc/genome"
	"github.com/mascpcr/masc/thermo"
)

// TargetKind selects which search a batch target runs.
type TargetKind int

const (
	// KindDiscriminatory searches for a mutant/wildtype primer pair.
	KindDiscriminatory TargetKind = iota
	// KindCommon searches for a primer binding both genomes.
	KindCommon
)

// Target is one requested candidate search.
type Target struct {
	Kind   TargetKind
	Idx    int
	Strand Strand
}

// Result holds the outcome of one target's search.  A nil primer with
// a nil Err means no admissible candidate was found.
type Result struct {
	Target   Target
	Mutant   *CandidatePrimer
	Wildtype *CandidatePrimer
	Common   *CandidatePrimer
	Err      error
}

// RunBatch runs every target's search, parallelism jobs at a time
// (0 means one job per target).  Per-job stats are merged into the
// returned Stats.  Search errors are recorded per result, not
// returned; the error return covers invalid batch setup only.
func RunBatch(targets []Target, genomeSeq, refSeq string, luts *genome.LUTSet,
	oracle thermo.Oracle, opts *Opts, parallelism int) ([]Result, Stats, error) {
	if err := opts.Validate(); err != nil {
		return nil, Stats{}, err
	}
	if err := luts.Validate(len(genomeSeq)); err != nil {
		return nil, Stats{}, err
	}
	if parallelism <= 0 || parallelism > len(targets) {
		parallelism = len(targets)
	}
	results := make([]Result, len(targets))
	jobStats := make([]Stats, parallelism)
	err := traverse.Each(parallelism, func(jobIdx int) error {
		for i := jobIdx; i < len(targets); i += parallelism {
			t := targets[i]
			r := Result{Target: t}
			switch t.Kind {
			case KindDiscriminatory:
				r.Mutant, r.Wildtype, r.Err = FindDiscriminatory(
					t.Idx, t.Strand, genomeSeq, refSeq, luts, oracle, &jobStats[jobIdx], opts)
			case KindCommon:
				r.Common, r.Err = FindCommon(
					t.Idx, t.Strand, genomeSeq, luts, oracle, &jobStats[jobIdx], opts)
			default:
				r.Err = errors.E("unknown target kind", int(t.Kind))
			}
			results[i] = r
		}
		return nil
	})
	if err != nil {
		return nil, Stats{}, err
	}
	var stats Stats
	for _, s := range jobStats {
		stats = stats.Merge(s)
	}
	return results, stats, nil
}
