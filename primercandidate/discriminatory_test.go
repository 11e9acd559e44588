package primercandidate

import (
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mascpcr/masc/thermo"
)

func TestFindDiscriminatoryNoMismatches(t *testing.T) {
	ref := testGenome()
	luts := buildLUTs(t, ref, ref)
	opts := DefaultOpts

	var stats Stats
	mut, wt, err := FindDiscriminatory(500, Fwd, ref, ref, luts, &fakeOracle{}, &stats, &opts)
	require.NoError(t, err)
	expect.Nil(t, mut)
	expect.Nil(t, wt)
	// Lengths 20..25 were admissible but carried no mismatches.
	expect.EQ(t, stats.LowMismatch, 6)
	expect.EQ(t, stats.Found, 0)
}

func TestFindDiscriminatoryFwd(t *testing.T) {
	ref := testGenome()
	mutant := mutate(ref, map[int]byte{495: 'G'})
	luts := buildLUTs(t, mutant, ref)
	opts := DefaultOpts

	var stats Stats
	mut, wt, err := FindDiscriminatory(500, Fwd, mutant, ref, luts, &fakeOracle{}, &stats, &opts)
	require.NoError(t, err)
	require.NotNil(t, mut)
	require.NotNil(t, wt)
	checkRecord(t, mut, len(mutant), &opts)
	checkRecord(t, wt, len(ref), &opts)

	// The fake oracle melts a 22-mer at 62C, the closest of the
	// admissible lengths to the 62.5C range midpoint.
	expect.EQ(t, mut.Length, 22)
	expect.EQ(t, mut.Idx, 500-22+1)
	expect.EQ(t, mut.Strand, Fwd)
	expect.EQ(t, mut.Seq, mutant[479:501])

	// The designed mismatch at coordinate 495 sits 5 bases in from the
	// 3' end and contributes MismatchWeights[5] to the score.
	expect.EQ(t, mut.MismatchIdxs[5], uint8(1))
	nFlags := 0
	for _, f := range mut.MismatchIdxs {
		nFlags += int(f)
	}
	expect.EQ(t, nFlags, 1)
	expect.EQ(t, mut.Score, Score(62, 0, 0, &opts)+opts.MismatchWeights[5])

	// Wildtype counterpart: same strand and length, unscored, clean.
	expect.EQ(t, wt.Strand, mut.Strand)
	expect.EQ(t, wt.Length, mut.Length)
	expect.EQ(t, wt.Idx, luts.Index[mut.Idx])
	expect.EQ(t, wt.Score, 0.0)
	expect.EQ(t, wt.Seq, ref[479:501])
	for off, f := range wt.MismatchIdxs {
		expect.EQ(t, f, uint8(0), "offset %d", off)
	}
	expect.EQ(t, stats.Found, 1)
}

func TestFindDiscriminatoryRev(t *testing.T) {
	ref := testGenome()
	mutant := mutate(ref, map[int]byte{505: 'A'})
	luts := buildLUTs(t, mutant, ref)
	opts := DefaultOpts

	mut, wt, err := FindDiscriminatory(500, Rev, mutant, ref, luts, &fakeOracle{}, nil, &opts)
	require.NoError(t, err)
	require.NotNil(t, mut)
	checkRecord(t, mut, len(mutant), &opts)

	expect.EQ(t, mut.Strand, Rev)
	expect.EQ(t, mut.Length, 22)
	// A reverse primer's Idx is its 3' anchor, the 5'-most coordinate
	// on the forward strand.
	expect.EQ(t, mut.Idx, 500)
	expect.EQ(t, mut.Seq, thermo.ReverseComplement(mutant[500:522]))
	// Coordinate 505 is 5 bases in from the 3' end on this strand.
	expect.EQ(t, mut.MismatchIdxs[5], uint8(1))
	expect.EQ(t, wt.Idx, 500)
	expect.EQ(t, wt.Seq, thermo.ReverseComplement(ref[500:522]))
}

func TestFindDiscriminatoryInsufficientFlank(t *testing.T) {
	ref := testGenome()
	luts := buildLUTs(t, ref, ref)
	opts := DefaultOpts

	for _, idx := range []int{0, 29, 970, 999} {
		var stats Stats
		mut, wt, err := FindDiscriminatory(idx, Fwd, ref, ref, luts, &fakeOracle{}, &stats, &opts)
		require.NoError(t, err, "idx=%d", idx)
		expect.Nil(t, mut, "idx=%d", idx)
		expect.Nil(t, wt, "idx=%d", idx)
		expect.EQ(t, stats.NoRegion, 1, "idx=%d", idx)
	}
	// idx=30 and idx=969 are the tightest anchors that still fit.
	for _, idx := range []int{30, 969} {
		_, _, err := FindDiscriminatory(idx, Fwd, ref, ref, luts, &fakeOracle{}, nil, &opts)
		require.NoError(t, err, "idx=%d", idx)
	}
}

func TestFindDiscriminatoryGCClamp(t *testing.T) {
	ref := mutate(testGenome(), map[int]byte{
		496: 'G', 497: 'C', 498: 'G', 499: 'C', 500: 'G',
	})
	mutant := mutate(ref, map[int]byte{495: 'G'})
	luts := buildLUTs(t, mutant, ref)
	opts := DefaultOpts

	var stats Stats
	mut, wt, err := FindDiscriminatory(500, Fwd, mutant, ref, luts, &fakeOracle{}, &stats, &opts)
	require.NoError(t, err)
	expect.Nil(t, mut)
	expect.Nil(t, wt)
	expect.EQ(t, stats.ClampFailed, 1)

	// Lenient mode skips the clamp precheck and the thermodynamic
	// cutoffs; with a designed mismatch present a candidate comes back.
	lenient := DefaultOpts
	lenient.LenientMode = true
	mut, wt, err = FindDiscriminatory(500, Fwd, mutant, ref, luts, &fakeOracle{}, nil, &lenient)
	require.NoError(t, err)
	require.NotNil(t, mut)
	require.NotNil(t, wt)
	checkRecord(t, mut, len(mutant), &lenient)
}

func TestFindDiscriminatoryEarlyStop(t *testing.T) {
	ref := testGenome()
	mutant := mutate(ref, map[int]byte{495: 'G'})
	luts := buildLUTs(t, mutant, ref)
	opts := DefaultOpts

	// Windows of 22+ bases form a hot homodimer; the scan must abandon
	// at 22 and keep the best of the shorter admissible windows.
	oracle := &fakeOracle{
		homo: func(seq string) (thermo.Structure, error) {
			if len(seq) >= 22 {
				return thermo.Structure{Tm: 50, Pairs: 8}, nil
			}
			return thermo.Structure{}, nil
		},
	}
	var stats Stats
	mut, _, err := FindDiscriminatory(500, Fwd, mutant, ref, luts, oracle, &stats, &opts)
	require.NoError(t, err)
	require.NotNil(t, mut)
	expect.EQ(t, mut.Length, 21)
	expect.EQ(t, stats.Abandoned, 1)
	// Lengths past the stop were never examined.
	expect.EQ(t, stats.Windows, 22-opts.MinSize+1)
}

func TestFindDiscriminatoryEdgeTruncatesWalk(t *testing.T) {
	ref := testGenome()
	mutant := mutate(ref, map[int]byte{495: 'G', 499: 'A'})
	luts := buildLUTs(t, mutant, ref)
	luts.MarkEdge(498)
	opts := DefaultOpts

	// The edge at offset 2 truncates the mismatch walk: the mismatch
	// at offset 1 counts, the one at offset 5 is never reached, and
	// the window is still scored with the partial tally. This pins the
	// historical behavior; make the edge disqualifying only as a
	// deliberate semantic change.
	mut, _, err := FindDiscriminatory(500, Fwd, mutant, ref, luts, &fakeOracle{}, nil, &opts)
	require.NoError(t, err)
	require.NotNil(t, mut)
	expect.EQ(t, mut.MismatchIdxs[1], uint8(1))
	expect.EQ(t, mut.MismatchIdxs[5], uint8(0))
	expect.EQ(t, mut.Score, Score(62, 0, 0, &opts)+opts.MismatchWeights[1])
}

func TestFindDiscriminatoryMinMismatches(t *testing.T) {
	ref := testGenome()
	mutant := mutate(ref, map[int]byte{495: 'G'})
	luts := buildLUTs(t, mutant, ref)
	opts := DefaultOpts
	opts.MinNumMismatches = 2

	mut, wt, err := FindDiscriminatory(500, Fwd, mutant, ref, luts, &fakeOracle{}, nil, &opts)
	require.NoError(t, err)
	expect.Nil(t, mut)
	expect.Nil(t, wt)
}

func TestFindDiscriminatoryValidation(t *testing.T) {
	ref := testGenome()
	luts := buildLUTs(t, ref, ref)

	opts := DefaultOpts
	_, _, err := FindDiscriminatory(500, Strand(0), ref, ref, luts, &fakeOracle{}, nil, &opts)
	assert.Error(t, err)

	bad := DefaultOpts
	bad.MinSize, bad.MaxSize = 30, 18
	_, _, err = FindDiscriminatory(500, Fwd, ref, ref, luts, &fakeOracle{}, nil, &bad)
	assert.Error(t, err)

	shortLuts := buildLUTs(t, ref[:100], ref[:100])
	_, _, err = FindDiscriminatory(500, Fwd, ref, ref, shortLuts, &fakeOracle{}, nil, &opts)
	assert.Error(t, err)
}

func TestFindDiscriminatoryOracleError(t *testing.T) {
	ref := testGenome()
	mutant := mutate(ref, map[int]byte{495: 'G'})
	luts := buildLUTs(t, mutant, ref)
	opts := DefaultOpts

	oracle := &fakeOracle{
		tm: func(seq string) (float64, error) {
			return 0, assert.AnError
		},
	}
	_, _, err := FindDiscriminatory(500, Fwd, mutant, ref, luts, oracle, nil, &opts)
	assert.Error(t, err)
}
