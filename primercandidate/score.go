package primercandidate

import (
	"github.com/mascpcr/masc/thermo"
)

// Score maps a window's three melting temperatures to a single
// comparable fitness. Each term is a squared relative error, negated,
// so the maximum attainable score is 0: the duplex term penalizes
// distance from the center of the acceptable Tm range, and the two
// structure terms penalize hairpin and homodimer stability relative to
// the clip threshold. Pure and deterministic: identical inputs yield
// bit-identical scores.
func Score(tm, hairpinTm, homodimerTm float64, opts *Opts) float64 {
	target := 0.5 * (opts.TmMin + opts.TmMax)
	width := opts.TmMax - opts.TmMin
	hetero := -sq((tm - target) / width)
	hairpin := -sq(hairpinTm / opts.SpuriousTmClip)
	homo := -sq(homodimerTm / opts.SpuriousTmClip)
	return hetero + hairpin + homo
}

// ScoreSeq measures a bare sequence with the oracle and scores it.
// Useful for comparing primers produced outside a search call.
func ScoreSeq(seq string, oracle thermo.Oracle, opts *Opts) (float64, error) {
	wt, err := measureWindow(seq, oracle)
	if err != nil {
		return 0, err
	}
	return Score(wt.tm, wt.hairpinTm, wt.homoTm, opts), nil
}

func sq(x float64) float64 { return x * x }
