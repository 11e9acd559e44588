package primercandidate

import (
	"github.com/grailbio/base/errors"
)

// Opts configures a candidate search. Construct it once (start from
// DefaultOpts), validate it implicitly by passing it to a search, and
// share it by reference across calls; the searches never mutate it.
type Opts struct {
	// TmMin and TmMax bound the acceptable primer melting temperature
	// in degrees C.
	TmMin float64
	TmMax float64
	// SpuriousTmClip is the highest tolerated melting temperature, in
	// degrees C, for hairpin or homodimer structures.
	SpuriousTmClip float64
	// MinSize and MaxSize bound the primer length in bp.
	MinSize int
	MaxSize int
	// MinNumMismatches is the smallest number of designed mismatches a
	// discriminatory primer footprint must cover.
	MinNumMismatches int
	// LenientMode, for the discriminatory search only, bypasses the
	// thermodynamic cutoffs and the 3'-end GC clamp precheck. Every
	// window is scored.
	LenientMode bool
	// MismatchWeights scores a designed mismatch by its offset from
	// the 3' end; offsets past the end of the table reuse the last
	// entry.
	MismatchWeights []float64
}

// DefaultOpts holds the stock MASC-PCR design parameters.
var DefaultOpts = Opts{
	TmMin:            60,
	TmMax:            65,
	SpuriousTmClip:   40,
	MinSize:          18,
	MaxSize:          30,
	MinNumMismatches: 1,
	LenientMode:      false,
	MismatchWeights:  []float64{5, 4, 4, 3, 3, 2, 1},
}

// Validate rejects option sets no search could run under.
func (o *Opts) Validate() error {
	if o.MinSize < 1 || o.MinSize > o.MaxSize {
		return errors.E("primercandidate: invalid size range",
			o.MinSize, "-", o.MaxSize)
	}
	if o.TmMin >= o.TmMax {
		return errors.E("primercandidate: invalid tm range",
			o.TmMin, "-", o.TmMax)
	}
	if o.SpuriousTmClip <= 0 {
		return errors.E("primercandidate: spurious tm clip must be positive")
	}
	if len(o.MismatchWeights) == 0 {
		return errors.E("primercandidate: empty mismatch weight table")
	}
	return nil
}
