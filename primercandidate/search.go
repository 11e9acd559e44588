package primercandidate

import (
	"github.com/grailbio/base/errors"

	"github.com/mascpcr/masc/genome"
)

// noScore initializes the best-so-far score below anything the scorer
// can produce, so the first accepted window always wins.
const noScore = -1000.0

// validateSearch fail-fasts on malformed inputs. Recoverable "no
// primer here" outcomes are signaled by nil results instead; the two
// must never be conflated.
func validateSearch(strand Strand, genomeLen int, luts *genome.LUTSet, opts *Opts) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if !strand.valid() {
		return errors.E("primercandidate: strand must be +1 or -1, got", int(strand))
	}
	return luts.Validate(genomeLen)
}
