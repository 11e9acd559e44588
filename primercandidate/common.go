package primercandidate

import (
	"github.com/mascpcr/masc/genome"
	"github.com/mascpcr/masc/thermo"
)

// FindCommon searches for the best common primer whose 3' end binds at
// mutant-genome coordinate idx on the given strand. A common primer
// anneals to both genomes identically, so its footprint must stay
// clear of designed mismatches; the moment the growing 5' boundary
// reaches a mismatch position the scan terminates, since every longer
// window would cover it too. There is no wildtype pairing, no mismatch
// weighting, and no lenient mode: the thermodynamic cutoffs always
// apply.
//
// A (nil, nil) return means no viable primer exists at this anchor.
// stats may be nil.
func FindCommon(
	idx int, strand Strand,
	genomeSeq string,
	luts *genome.LUTSet,
	oracle thermo.Oracle,
	stats *Stats,
	opts *Opts) (*CandidatePrimer, error) {
	if err := validateSearch(strand, len(genomeSeq), luts, opts); err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &Stats{}
	}
	stats.Anchors++

	r, ok := maximalRegion(idx, strand, genomeSeq, opts.MaxSize, 2, oracle)
	if !ok {
		stats.NoRegion++
		return nil, nil
	}
	if !r.threePrimeClampOK() {
		stats.ClampFailed++
		return nil, nil
	}

	bestScore := noScore
	var best *CandidatePrimer
scan:
	for n := opts.MinSize; n <= opts.MaxSize; n++ {
		// The shortest window checks its whole footprint; each longer
		// one only the newly covered 5' boundary base.
		low := n - 1
		if n == opts.MinSize {
			low = 0
		}
		for offset := low; offset < n; offset++ {
			if luts.Mismatches.Get(r.coordAt(offset)) {
				stats.BoundaryMismatch++
				break scan
			}
		}
		stats.Windows++

		t, sig, err := admitWindow(r.window(n), oracle, opts)
		if err != nil {
			return nil, err
		}
		switch sig {
		case tryLonger:
			stats.UnderTm++
			continue
		case abandon:
			stats.Abandoned++
			break scan
		}
		stats.Accepted++

		score := Score(t.tm, t.hairpinTm, t.homoTm, opts)
		if score > bestScore {
			best = &CandidatePrimer{
				Idx:          r.fivePrimeIdx(n),
				Seq:          r.window(n),
				Strand:       strand,
				Length:       n,
				MismatchIdxs: make([]uint8, n),
				Tm:           t.tm,
				TmHomo:       t.homoTm,
				TmHairpin:    t.hairpinTm,
				Score:        score,
			}
			bestScore = score
		}
	}
	if best != nil {
		stats.Found++
	}
	return best, nil
}
