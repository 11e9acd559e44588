package thermo

import (
	"fmt"
	"math"
	"strings"
)

// Conditions holds the reaction parameters the nearest-neighbor model
// depends on. The zero value is not useful; start from
// DefaultConditions.
type Conditions struct {
	// NaM is the monovalent cation concentration in mol/L.
	NaM float64
	// MgM is the magnesium concentration in mol/L.
	MgM float64
	// PrimerM is the total primer concentration in mol/L.
	PrimerM float64
}

// DefaultConditions matches a typical PCR mix: 50 mM monovalent,
// 1.5 mM Mg2+, 250 nM primer.
var DefaultConditions = Conditions{
	NaM:     0.05,
	MgM:     0.0015,
	PrimerM: 250e-9,
}

// effectiveMonovalent folds Mg2+ into a single Na+-equivalent
// concentration (Owczarzy-style sqrt transform).
func (c Conditions) effectiveMonovalent() float64 {
	na := c.NaM
	if c.MgM > 0 {
		na += 3.8 * math.Sqrt(c.MgM)
	}
	if na <= 0 {
		na = 1e-6
	}
	return na
}

// ParseConc parses a concentration with a metric unit suffix, e.g.
// "50mM", "250nM", "3uM", into mol/L.
func ParseConc(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	var val float64
	var unit string
	if _, err := fmt.Sscanf(s, "%f%s", &val, &unit); err != nil {
		return 0, fmt.Errorf("thermo: invalid concentration %q: %v", s, err)
	}
	switch unit {
	case "m":
		return val, nil
	case "mm":
		return val * 1e-3, nil
	case "um", "μm":
		return val * 1e-6, nil
	case "nm":
		return val * 1e-9, nil
	}
	return 0, fmt.Errorf("thermo: unknown unit %q in %q", unit, s)
}
