// Package primercandidate finds discriminatory and common primer
// candidates for MASC-PCR verification of a recoded genome against its
// wildtype reference.
//
// A discriminatory primer anchors its 3' footprint over one or more
// designed sequence changes, so it binds the recoded genome but not
// the wildtype (the paired wildtype primer binds the reverse way). A
// common primer anchors over a mismatch-free region and binds both
// genomes identically.
//
// Both searches fix the primer 3' end at a caller-supplied genomic
// coordinate and slide the 5' end outward, keeping the best-scoring
// window that passes the hard thermodynamic cutoffs. Each call is a
// pure function of its inputs; callers wanting throughput should run
// independent anchor coordinates concurrently.
package primercandidate

// Strand identifies which genome strand a primer anneals to.
type Strand int8

const (
	// Fwd is the forward (+) strand.
	Fwd Strand = 1
	// Rev is the reverse (-) strand.
	Rev Strand = -1
)

func (s Strand) valid() bool { return s == Fwd || s == Rev }

// CandidatePrimer is one accepted primer candidate. Values are never
// mutated after construction.
type CandidatePrimer struct {
	// Idx is the genomic coordinate of the 5'-most nucleotide of the
	// primer footprint on the forward strand of its own genome (mutant
	// coordinates for a discriminatory or common primer, reference
	// coordinates for a wildtype counterpart).
	Idx int
	// Seq is the primer sequence, 5'→3'.
	Seq string
	// Strand the primer anneals to.
	Strand Strand
	// Length in bp. Always len(Seq).
	Length int
	// MismatchIdxs flags designed mismatches per position, indexed
	// from the 3' end (entry 0 is the 3'-most nucleotide). Always
	// Length entries; all zero for wildtype and common primers.
	MismatchIdxs []uint8
	// Tm is the primer/target duplex melting temperature, degrees C.
	Tm float64
	// TmHomo is the homodimer melting temperature, degrees C.
	TmHomo float64
	// TmHairpin is the hairpin melting temperature, degrees C.
	TmHairpin float64
	// Score is the composite fitness (higher is better). Fixed at 0
	// for the wildtype counterpart of a discriminatory primer.
	Score float64
}
