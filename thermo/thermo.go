// Package thermo provides primer thermodynamics: duplex melting
// temperature, secondary-structure (hairpin, homodimer) melting
// estimates, and reverse complementation.
//
// The Oracle interface is the capability set consumed by the candidate
// search in package primercandidate; NN is the default implementation,
// based on the unified nearest-neighbor parameter set with a salt
// correction. All methods are pure functions of their inputs, so an
// Oracle value may be shared freely across goroutines.
package thermo

import "fmt"

// Structure describes a predicted secondary structure (a hairpin stem
// or a homodimer duplex).
type Structure struct {
	// Tm is the melting temperature of the predicted structure in
	// degrees C. Zero when no structure is predicted.
	Tm float64
	// Pairs is the number of paired bases in the predicted stem.
	Pairs int
}

// Oracle computes the thermodynamic measurements needed to vet a
// primer candidate. Sequences are 5'→3' over the alphabet {A,C,G,T}
// (case-insensitive); any other byte yields an error.
type Oracle interface {
	// MeltingTemp returns the primer/target duplex melting
	// temperature in degrees C.
	MeltingTemp(seq string) (float64, error)
	// Hairpin predicts the most stable hairpin of the sequence.
	Hairpin(seq string) (Structure, error)
	// Homodimer predicts the most stable self-dimer of the sequence.
	Homodimer(seq string) (Structure, error)
	// ReverseComplement returns the reverse complement of the
	// sequence. Non-ACGT bytes are passed through unchanged.
	ReverseComplement(seq string) string
}

// baseIndex maps A, C, G, T (either case) to {0,1,2,3} and any other
// byte to invalidBase.
var baseIndex [256]uint8

const invalidBase = uint8(4)

var rcTable [256]byte

func init() {
	for i := range baseIndex {
		baseIndex[i] = invalidBase
		rcTable[i] = byte(i)
	}
	for i, ch := range []byte("ACGT") {
		lo := ch | 0x20
		baseIndex[ch] = uint8(i)
		baseIndex[lo] = uint8(i)
	}
	rcTable['A'], rcTable['a'] = 'T', 't'
	rcTable['C'], rcTable['c'] = 'G', 'g'
	rcTable['G'], rcTable['g'] = 'C', 'c'
	rcTable['T'], rcTable['t'] = 'A', 'a'
}

// ReverseComplement returns the reverse complement of a DNA sequence.
// Bytes outside ACGT are left as-is (reversed only).
func ReverseComplement(seq string) string {
	buf := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		buf[len(seq)-1-i] = rcTable[seq[i]]
	}
	return string(buf)
}

// checkBases verifies that seq is drawn from {A,C,G,T}.
func checkBases(seq string) error {
	for i := 0; i < len(seq); i++ {
		if baseIndex[seq[i]] == invalidBase {
			return fmt.Errorf("thermo: invalid base %q at position %d", seq[i], i)
		}
	}
	return nil
}

func isWatsonCrick(a, b byte) bool {
	ai, bi := baseIndex[a], baseIndex[b]
	if ai == invalidBase || bi == invalidBase {
		return false
	}
	return ai+bi == 3 // A+T, C+G
}

// NN is the default Oracle: SantaLucia unified nearest-neighbor
// duplex model plus stem-based secondary structure estimates.
type NN struct {
	cond Conditions
}

// NewNN returns an Oracle evaluating under the given reaction
// conditions.
func NewNN(cond Conditions) *NN {
	return &NN{cond: cond}
}

// MeltingTemp implements Oracle.
func (o *NN) MeltingTemp(seq string) (float64, error) {
	tm, _, _, err := duplexTm(seq, o.cond, false)
	return tm, err
}

// Hairpin implements Oracle.
func (o *NN) Hairpin(seq string) (Structure, error) {
	if err := checkBases(seq); err != nil {
		return Structure{}, err
	}
	return hairpinStructure(seq, o.cond), nil
}

// Homodimer implements Oracle.
func (o *NN) Homodimer(seq string) (Structure, error) {
	if err := checkBases(seq); err != nil {
		return Structure{}, err
	}
	return homodimerStructure(seq, o.cond), nil
}

// ReverseComplement implements Oracle.
func (o *NN) ReverseComplement(seq string) string {
	return ReverseComplement(seq)
}
