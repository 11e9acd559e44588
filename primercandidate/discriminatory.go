package primercandidate

import (
	"github.com/mascpcr/masc/genome"
	"github.com/mascpcr/masc/thermo"
)

// FindDiscriminatory searches for the best discriminatory primer whose
// 3' end binds at mutant-genome coordinate idx on the given strand,
// along with its wildtype counterpart on the reference genome. The
// counterpart shares strand and length, carries no mismatch flags, and
// is not scored (its Score is 0); but it must independently satisfy
// the same thermodynamic cutoffs, since it is run against the
// wildtype template under the same cycling conditions.
//
// A (nil, nil, nil) return means no viable primer exists at this
// anchor; the caller should try another coordinate. A non-nil error
// reports either malformed inputs or an oracle failure, never a mere
// absence of candidates. stats may be nil.
func FindDiscriminatory(
	idx int, strand Strand,
	genomeSeq, refSeq string,
	luts *genome.LUTSet,
	oracle thermo.Oracle,
	stats *Stats,
	opts *Opts) (*CandidatePrimer, *CandidatePrimer, error) {
	if err := validateSearch(strand, len(genomeSeq), luts, opts); err != nil {
		return nil, nil, err
	}
	if stats == nil {
		stats = &Stats{}
	}
	stats.Anchors++

	mutRegion, ok := maximalRegion(idx, strand, genomeSeq, opts.MaxSize, 1, oracle)
	if !ok {
		stats.NoRegion++
		return nil, nil, nil
	}
	wtRegion, ok := maximalRegion(luts.Index[idx], strand, refSeq, opts.MaxSize, 1, oracle)
	if !ok {
		stats.NoRegion++
		return nil, nil, nil
	}
	if !opts.LenientMode && !mutRegion.threePrimeClampOK() {
		stats.ClampFailed++
		return nil, nil, nil
	}

	bestScore := noScore
	var bestMut, bestWt *CandidatePrimer
scan:
	for n := opts.MinSize; n <= opts.MaxSize; n++ {
		stats.Windows++
		mutSeq := mutRegion.window(n)
		wtSeq := wtRegion.window(n)

		mutT, wtT, sig, err := admitPair(mutSeq, wtSeq, oracle, opts)
		if err != nil {
			return nil, nil, err
		}
		switch sig {
		case tryLonger:
			stats.UnderTm++
			continue
		case abandon:
			stats.Abandoned++
			break scan
		}

		idxs, count, weighted := weighMismatches(mutRegion, n, luts, opts.MismatchWeights)
		if count < opts.MinNumMismatches {
			stats.LowMismatch++
			continue
		}
		stats.Accepted++

		score := Score(mutT.tm, mutT.hairpinTm, mutT.homoTm, opts) + weighted
		if score > bestScore {
			fivePrime := mutRegion.fivePrimeIdx(n)
			bestMut = &CandidatePrimer{
				Idx:          fivePrime,
				Seq:          mutSeq,
				Strand:       strand,
				Length:       n,
				MismatchIdxs: idxs,
				Tm:           mutT.tm,
				TmHomo:       mutT.homoTm,
				TmHairpin:    mutT.hairpinTm,
				Score:        score,
			}
			bestWt = &CandidatePrimer{
				Idx:          luts.Index[fivePrime],
				Seq:          wtSeq,
				Strand:       strand,
				Length:       n,
				MismatchIdxs: make([]uint8, n),
				Tm:           wtT.tm,
				TmHomo:       wtT.homoTm,
				TmHairpin:    wtT.hairpinTm,
				Score:        0,
			}
			bestScore = score
		}
	}
	if bestMut != nil {
		stats.Found++
	}
	return bestMut, bestWt, nil
}
