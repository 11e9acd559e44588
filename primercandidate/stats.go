package primercandidate

// Stats counts search outcomes across one or more calls. Pass one
// *Stats per goroutine and combine with Merge; passing nil disables
// counting.
type Stats struct {
	// Anchors is the number of search calls made.
	Anchors int
	// NoRegion counts anchors rejected for insufficient flanking
	// sequence.
	NoRegion int
	// ClampFailed counts anchors rejected by the 3'-end GC clamp
	// precheck.
	ClampFailed int
	// Windows is the total number of candidate windows examined.
	Windows int
	// UnderTm counts windows skipped for melting below the Tm range.
	UnderTm int
	// Abandoned counts scans terminated early by over-melting or
	// spurious structure.
	Abandoned int
	// LowMismatch counts discriminatory windows rejected for carrying
	// fewer than the minimum designed mismatches.
	LowMismatch int
	// BoundaryMismatch counts common-primer scans terminated by a
	// designed mismatch at the growing footprint boundary.
	BoundaryMismatch int
	// Accepted is the number of windows that passed all cutoffs and
	// were scored.
	Accepted int
	// Found is the number of anchors that produced a primer.
	Found int
}

// Merge adds the field values of the two Stats objects and returns the
// combined Stats.
func (s Stats) Merge(o Stats) Stats {
	s.Anchors += o.Anchors
	s.NoRegion += o.NoRegion
	s.ClampFailed += o.ClampFailed
	s.Windows += o.Windows
	s.UnderTm += o.UnderTm
	s.Abandoned += o.Abandoned
	s.LowMismatch += o.LowMismatch
	s.BoundaryMismatch += o.BoundaryMismatch
	s.Accepted += o.Accepted
	s.Found += o.Found
	return s
}
