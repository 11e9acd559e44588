package primercandidate

import (
	"strings"
	"testing"

	"github.com/mascpcr/masc/genome"
	"github.com/mascpcr/masc/thermo"
)

// fakeOracle gives tests full control over the thermodynamic
// measurements. The default melting temperature is a pure function of
// window length (40 + len), which makes it monotonic in length the way
// the filter assumes: 18-mers under-melt, 20..25-mers land in the
// default 60-65 range, 26-mers over-melt.
type fakeOracle struct {
	tm      func(seq string) (float64, error)
	hairpin func(seq string) (thermo.Structure, error)
	homo    func(seq string) (thermo.Structure, error)
}

func (f *fakeOracle) MeltingTemp(seq string) (float64, error) {
	if f.tm != nil {
		return f.tm(seq)
	}
	return 40 + float64(len(seq)), nil
}

func (f *fakeOracle) Hairpin(seq string) (thermo.Structure, error) {
	if f.hairpin != nil {
		return f.hairpin(seq)
	}
	return thermo.Structure{}, nil
}

func (f *fakeOracle) Homodimer(seq string) (thermo.Structure, error) {
	if f.homo != nil {
		return f.homo(seq)
	}
	return thermo.Structure{}, nil
}

func (f *fakeOracle) ReverseComplement(seq string) string {
	return thermo.ReverseComplement(seq)
}

// testGenome is a 1000 bp sequence whose every 5-mer carries at most
// two G/C bases, so the 3'-end clamp precheck passes at any anchor.
func testGenome() string {
	return strings.Repeat("ACTTGAAT", 125)
}

// mutate returns seq with the byte at each given position replaced.
func mutate(seq string, subs map[int]byte) string {
	b := []byte(seq)
	for pos, ch := range subs {
		b[pos] = ch
	}
	return string(b)
}

// buildLUTs builds the table set for a mutant/reference pair, failing
// the test on error.
func buildLUTs(t *testing.T, mutant, reference string) *genome.LUTSet {
	t.Helper()
	luts, err := genome.BuildLUTSet(mutant, reference)
	if err != nil {
		t.Fatal(err)
	}
	return luts
}

// checkRecord verifies the structural invariants every returned
// candidate must satisfy.
func checkRecord(t *testing.T, p *CandidatePrimer, genomeLen int, opts *Opts) {
	t.Helper()
	if p.Length != len(p.Seq) || p.Length != len(p.MismatchIdxs) {
		t.Fatalf("inconsistent lengths: %d seq=%d idxs=%d",
			p.Length, len(p.Seq), len(p.MismatchIdxs))
	}
	if p.Length < opts.MinSize || p.Length > opts.MaxSize {
		t.Fatalf("length %d outside [%d,%d]", p.Length, opts.MinSize, opts.MaxSize)
	}
	if p.Idx < 0 || p.Idx+p.Length > genomeLen {
		t.Fatalf("footprint [%d,%d) outside genome of length %d",
			p.Idx, p.Idx+p.Length, genomeLen)
	}
}
