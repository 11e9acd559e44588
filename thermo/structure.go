package thermo

// Secondary structure prediction is deliberately coarse: the searches
// only need a melting temperature comparable against a clip threshold,
// not a full partition function. Both predictors locate the longest
// Watson-Crick stem and report the melting temperature of that stem.

// minStemPairs is the shortest stem considered a structure at all.
const minStemPairs = 3

// minHairpinLoop is the minimum number of unpaired bases bridging a
// hairpin stem.
const minHairpinLoop = 3

// hairpinStructure finds the longest self-folding stem within seq and
// reports its unimolecular melting temperature.
//
// REQUIRES: seq contains only ACGT (checked by the caller).
func hairpinStructure(seq string, cond Conditions) Structure {
	n := len(seq)
	bestLen, bestStart, bestLoop := 0, 0, 0
	for i := 0; i < n; i++ {
		for j := n - 1; j > i; j-- {
			k := 0
			for j-i-2*k >= minHairpinLoop+1 && isWatsonCrick(seq[i+k], seq[j-k]) {
				k++
			}
			if k > bestLen {
				bestLen, bestStart, bestLoop = k, i, j-i-2*k+1
			}
		}
	}
	if bestLen < minStemPairs {
		return Structure{}
	}
	stem := seq[bestStart : bestStart+bestLen]
	return Structure{
		Tm:    unimolecularTm(stem, bestLoop, cond),
		Pairs: bestLen,
	}
}

// homodimerStructure finds the longest contiguous complementary run
// between two antiparallel copies of seq, over all alignments, and
// reports the bimolecular melting temperature of that run.
//
// REQUIRES: seq contains only ACGT (checked by the caller).
func homodimerStructure(seq string, cond Conditions) Structure {
	n := len(seq)
	bestLen, bestStart := 0, 0
	// In an antiparallel alignment of two copies, base i of one copy
	// faces base d-i of the other; d indexes the alignment.
	for d := 0; d <= 2*(n-1); d++ {
		run := 0
		lo := 0
		if d-n+1 > 0 {
			lo = d - n + 1
		}
		for i := lo; i <= d && i < n; i++ {
			if isWatsonCrick(seq[i], seq[d-i]) {
				run++
				if run > bestLen {
					bestLen = run
					bestStart = i - run + 1
				}
			} else {
				run = 0
			}
		}
	}
	if bestLen < minStemPairs {
		return Structure{}
	}
	stem := seq[bestStart : bestStart+bestLen]
	tm, _, _, err := duplexTm(stem, cond, true)
	if err != nil {
		return Structure{}
	}
	return Structure{Tm: tm, Pairs: bestLen}
}
