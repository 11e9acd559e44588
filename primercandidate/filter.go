package primercandidate

import (
	"github.com/mascpcr/masc/thermo"
)

// signal is the three-way decision from the thermodynamic
// admissibility filter. The distinction between tryLonger and abandon
// is load-bearing: melting temperature grows monotonically with window
// length, so an under-melting window may be rescued by growing it,
// while an over-melting or structure-prone window only gets worse.
type signal int

const (
	// accept: the window passes the hard cutoffs; score it.
	accept signal = iota
	// tryLonger: under-melting; advance to the next window length.
	tryLonger
	// abandon: over-melting or spurious structure; stop scanning this
	// anchor and strand entirely.
	abandon
)

// windowThermo bundles the oracle measurements for one window.
type windowThermo struct {
	tm        float64
	hairpinTm float64
	homoTm    float64
}

// measureWindow computes all three melting temperatures for a window.
func measureWindow(seq string, oracle thermo.Oracle) (windowThermo, error) {
	tm, err := oracle.MeltingTemp(seq)
	if err != nil {
		return windowThermo{}, err
	}
	hairpin, err := oracle.Hairpin(seq)
	if err != nil {
		return windowThermo{}, err
	}
	homo, err := oracle.Homodimer(seq)
	if err != nil {
		return windowThermo{}, err
	}
	return windowThermo{tm: tm, hairpinTm: hairpin.Tm, homoTm: homo.Tm}, nil
}

// admitWindow applies the hard cutoffs to a single window (the common
// search path). Hairpin and homodimer are only measured once the
// duplex Tm is in range, so on tryLonger/abandon the returned
// measurements may be partial.
func admitWindow(seq string, oracle thermo.Oracle, opts *Opts) (windowThermo, signal, error) {
	tm, err := oracle.MeltingTemp(seq)
	if err != nil {
		return windowThermo{}, abandon, err
	}
	wt := windowThermo{tm: tm}
	if tm < opts.TmMin {
		return wt, tryLonger, nil
	}
	if tm > opts.TmMax {
		return wt, abandon, nil
	}
	hairpin, err := oracle.Hairpin(seq)
	if err != nil {
		return wt, abandon, err
	}
	wt.hairpinTm = hairpin.Tm
	homo, err := oracle.Homodimer(seq)
	if err != nil {
		return wt, abandon, err
	}
	wt.homoTm = homo.Tm
	if wt.hairpinTm > opts.SpuriousTmClip || wt.homoTm > opts.SpuriousTmClip {
		return wt, abandon, nil
	}
	return wt, accept, nil
}

// admitPair applies the cutoffs to a mutant window and its wildtype
// counterpart (the discriminatory search path). Both sequences must
// independently pass; failures combine by OR, with the under-melting
// check taking precedence over the over-melting and structure checks.
// In lenient mode every window is accepted, but the measurements are
// still taken so accepted candidates report real temperatures.
func admitPair(mutSeq, wtSeq string, oracle thermo.Oracle, opts *Opts) (mut, wt windowThermo, sig signal, err error) {
	if mut, err = measureWindow(mutSeq, oracle); err != nil {
		return mut, wt, abandon, err
	}
	if wt, err = measureWindow(wtSeq, oracle); err != nil {
		return mut, wt, abandon, err
	}
	if opts.LenientMode {
		return mut, wt, accept, nil
	}
	if mut.tm < opts.TmMin || wt.tm < opts.TmMin {
		return mut, wt, tryLonger, nil
	}
	if mut.tm > opts.TmMax || wt.tm > opts.TmMax {
		return mut, wt, abandon, nil
	}
	if mut.hairpinTm > opts.SpuriousTmClip || mut.homoTm > opts.SpuriousTmClip {
		return mut, wt, abandon, nil
	}
	if wt.hairpinTm > opts.SpuriousTmClip || wt.homoTm > opts.SpuriousTmClip {
		return mut, wt, abandon, nil
	}
	return mut, wt, accept, nil
}
