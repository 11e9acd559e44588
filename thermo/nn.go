package thermo

import (
	"fmt"
	"math"
)

// Unified nearest-neighbor parameters (SantaLucia 1998). Enthalpy in
// kcal/mol, entropy in cal/(mol*K), indexed by [5' base][3' base]
// with A=0, C=1, G=2, T=3.
var stackDH = [4][4]float64{
	{-7.9, -8.4, -7.8, -7.2},
	{-8.5, -8.0, -10.6, -7.8},
	{-8.2, -9.8, -8.0, -8.4},
	{-7.2, -8.2, -8.5, -7.9},
}

var stackDS = [4][4]float64{
	{-22.2, -22.4, -21.0, -20.4},
	{-22.7, -19.9, -27.2, -21.0},
	{-22.2, -24.4, -19.9, -22.4},
	{-21.3, -22.2, -22.7, -22.2},
}

const (
	gasConstant = 1.987 // cal/(mol*K)

	initiationDH = 0.2
	initiationDS = -5.7
	symmetryDS   = -1.4

	kelvinOffset = 273.15
)

// stackSums accumulates the nearest-neighbor enthalpy and entropy over
// all adjacent base pairs of seq, including the duplex initiation
// terms.
func stackSums(seq string) (dH, dS float64, err error) {
	if len(seq) < 2 {
		return 0, 0, fmt.Errorf("thermo: sequence %q too short for a duplex", seq)
	}
	dH = initiationDH
	dS = initiationDS
	prev := baseIndex[seq[0]]
	if prev == invalidBase {
		return 0, 0, fmt.Errorf("thermo: invalid base %q at position 0", seq[0])
	}
	for i := 1; i < len(seq); i++ {
		cur := baseIndex[seq[i]]
		if cur == invalidBase {
			return 0, 0, fmt.Errorf("thermo: invalid base %q at position %d", seq[i], i)
		}
		dH += stackDH[prev][cur]
		dS += stackDS[prev][cur]
		prev = cur
	}
	return dH, dS, nil
}

// saltCorrectedDS applies the 0.368*N*ln[Na+eff] entropy correction.
func saltCorrectedDS(dS float64, pairs int, cond Conditions) float64 {
	return dS + 0.368*float64(pairs)*math.Log(cond.effectiveMonovalent())
}

// duplexTm returns the bimolecular duplex melting temperature of seq
// against its perfect complement, in degrees C, along with the
// underlying enthalpy and entropy sums.
func duplexTm(seq string, cond Conditions, selfComplementary bool) (tmC, dH, dS float64, err error) {
	dH, dS, err = stackSums(seq)
	if err != nil {
		return 0, 0, 0, err
	}
	if selfComplementary {
		dS += symmetryDS
	}
	dS = saltCorrectedDS(dS, len(seq)-1, cond)

	ct := math.Max(cond.PrimerM, 1e-12)
	divisor := 4.0
	if selfComplementary {
		divisor = 1.0
	}
	tmK := (dH * 1000.0) / (dS + gasConstant*math.Log(ct/divisor))
	return tmK - kelvinOffset, dH, dS, nil
}

// unimolecularTm returns the melting temperature of an intramolecular
// transition (a hairpin): no concentration term, but the loop closure
// entropy is included.
func unimolecularTm(stem string, loopLen int, cond Conditions) float64 {
	dH, dS, err := stackSums(stem)
	if err != nil {
		return 0
	}
	// Loop closure entropy estimate; grows weakly with loop size.
	dS -= 10.5 + 0.3*float64(loopLen)
	dS = saltCorrectedDS(dS, len(stem)-1, cond)
	if dS >= 0 {
		return 0
	}
	return (dH*1000.0)/dS - kelvinOffset
}
