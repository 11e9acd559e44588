package genome

import (
	"github.com/grailbio/base/errors"
)

// LUTSet bundles the three coordinate tables describing how a recoded
// genome relates to its wildtype reference. All tables are indexed by
// mutant-genome coordinate and have the same length as the mutant
// genome.
type LUTSet struct {
	// Index maps each mutant-genome coordinate to the corresponding
	// reference-genome coordinate. Monotonic non-decreasing.
	Index []int
	// Edges marks positions a primer footprint must not cross
	// (recoding cassette or contig boundaries).
	Edges *Bitmap
	// Mismatches marks designed substitutions relative to the
	// reference.
	Mismatches *Bitmap
}

// baseOf normalizes a sequence byte for comparison: lowercase folds to
// uppercase, anything outside ACGT maps to 0.
var baseOf [256]byte

func init() {
	for _, ch := range []byte("ACGT") {
		baseOf[ch] = ch
		baseOf[ch|0x20] = ch
	}
}

// ValidateBases verifies that seq is drawn from {A,C,G,T} in either
// case.
func ValidateBases(seq string) error {
	for i := 0; i < len(seq); i++ {
		if baseOf[seq[i]] == 0 {
			return errors.E("genome: invalid base", string(seq[i]), "at position", i)
		}
	}
	return nil
}

// BuildLUTSet derives a LUTSet from a gapless pairwise alignment: the
// mutant and reference sequences must have equal length, coordinates
// correspond one to one, and every differing position becomes a
// designed mismatch. Edge positions are not inferred; mark them with
// MarkEdge.
func BuildLUTSet(mutant, reference string) (*LUTSet, error) {
	if len(mutant) != len(reference) {
		return nil, errors.E("genome: sequence length mismatch:",
			len(mutant), "vs", len(reference))
	}
	lut := &LUTSet{
		Index:      make([]int, len(mutant)),
		Edges:      NewBitmap(len(mutant)),
		Mismatches: NewBitmap(len(mutant)),
	}
	for i := 0; i < len(mutant); i++ {
		lut.Index[i] = i
		if baseOf[mutant[i]] != baseOf[reference[i]] {
			lut.Mismatches.Set(i)
		}
	}
	return lut, nil
}

// MarkEdge flags a position as a genomic edge.
func (l *LUTSet) MarkEdge(pos int) {
	l.Edges.Set(pos)
}

// Validate checks the tables against the mutant genome length. The
// searches call this at entry so that malformed inputs fail fast
// instead of surfacing as spurious "no primer found" results.
func (l *LUTSet) Validate(genomeLen int) error {
	if l == nil {
		return errors.E("genome: nil LUT set")
	}
	if len(l.Index) != genomeLen {
		return errors.E("genome: index table length", len(l.Index),
			"!= genome length", genomeLen)
	}
	if l.Edges == nil || l.Edges.Len() != genomeLen {
		return errors.E("genome: edge table length mismatch with genome length", genomeLen)
	}
	if l.Mismatches == nil || l.Mismatches.Len() != genomeLen {
		return errors.E("genome: mismatch table length mismatch with genome length", genomeLen)
	}
	return nil
}
