package primercandidate

import (
	"github.com/mascpcr/masc/thermo"
)

// region is the maximal candidate area for one anchor and strand: the
// MaxSize nucleotides whose 3' end sits at the anchor coordinate. seq
// is held in primer sense (5'→3'), so its last byte is the 3'-most
// base regardless of strand, and windows of any length share that
// fixed 3' end. All strand-dependent coordinate arithmetic lives here.
type region struct {
	seq string
	// anchor is the forward-strand genomic coordinate of the 3'-most
	// base.
	anchor int
	strand Strand
}

// maximalRegion extracts the candidate region with its 3' end at idx.
// margin reserves trailing sequence past the region (1 for the
// discriminatory search, 2 for the common search, which needs an extra
// boundary base). ok is false when the genome does not have enough
// flanking sequence on either side.
func maximalRegion(idx int, strand Strand, seq string, maxSize, margin int, oracle thermo.Oracle) (region, bool) {
	if idx-maxSize < 0 || idx+maxSize > len(seq)-margin {
		return region{}, false
	}
	if strand == Fwd {
		return region{seq: seq[idx-maxSize+1 : idx+1], anchor: idx, strand: Fwd}, true
	}
	return region{seq: oracle.ReverseComplement(seq[idx : idx+maxSize]), anchor: idx, strand: Rev}, true
}

// window returns the trailing n bases: the length-n candidate with the
// same 3' end.
func (r region) window(n int) string {
	return r.seq[len(r.seq)-n:]
}

// coordAt returns the forward-strand genomic coordinate of the base at
// the given offset from the 3' end (offset 0 is the anchor itself; the
// walk recedes 5'-ward, which is leftward on Fwd and rightward on Rev).
func (r region) coordAt(offset int) int {
	return r.anchor - offset*int(r.strand)
}

// fivePrimeIdx returns the forward-strand genomic coordinate of the
// 5'-most base of a length-n window.
func (r region) fivePrimeIdx(n int) int {
	if r.strand == Fwd {
		return r.anchor - n + 1
	}
	return r.anchor
}

// threePrimeClampOK rejects regions whose 3'-terminal 5 bases carry
// more than 3 G/C: excess 3'-end stability promotes mis-priming, and
// since every window shares this 3' end, one check covers the whole
// scan.
func (r region) threePrimeClampOK() bool {
	end := r.seq
	if len(end) > 5 {
		end = end[len(end)-5:]
	}
	gc := 0
	for i := 0; i < len(end); i++ {
		if end[i] == 'G' || end[i] == 'C' {
			gc++
		}
	}
	return gc <= 3
}
