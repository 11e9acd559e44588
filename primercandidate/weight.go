package primercandidate

import (
	"github.com/mascpcr/masc/genome"
)

// weighMismatches walks a length-n window from its 3' end toward its
// 5' end, tallying designed mismatches and weighting each by its
// offset from the 3' end (3'-proximal mismatches discriminate most
// strongly during extension, so they weigh most).
//
// Hitting a genomic edge stops the walk immediately: no further
// offsets are examined, but the tally accumulated so far stands and
// the window is still scored with it. A window whose footprint crosses
// an edge is therefore scored on a partial tally rather than being
// disqualified; see TestFindDiscriminatoryEdgeTruncatesWalk before
// changing this.
func weighMismatches(r region, n int, luts *genome.LUTSet, weights []float64) (idxs []uint8, count int, weighted float64) {
	idxs = make([]uint8, n)
	for offset := 0; offset < n; offset++ {
		coord := r.coordAt(offset)
		if luts.Edges.Get(coord) {
			break
		}
		if !luts.Mismatches.Get(coord) {
			continue
		}
		idxs[offset] = 1
		count++
		w := offset
		if w >= len(weights) {
			w = len(weights) - 1
		}
		weighted += weights[w]
	}
	return idxs, count, weighted
}
