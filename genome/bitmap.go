// Package genome holds the per-coordinate lookup structures the primer
// search consumes: an index-alignment table mapping mutant-genome
// coordinates to reference-genome coordinates, and boolean-per-position
// edge and mismatch tables, stored as word-backed bitmaps.
package genome

import (
	"math/bits"
)

const bitsPerWord = bits.UintSize

// Bitmap is a fixed-length boolean-per-position table over genomic
// coordinates. Reads are safe for concurrent use; mutation is not.
type Bitmap struct {
	words []uintptr
	n     int
}

// NewBitmap creates an all-false bitmap covering positions [0, n).
func NewBitmap(n int) *Bitmap {
	return &Bitmap{
		words: make([]uintptr, (n+bitsPerWord-1)/bitsPerWord),
		n:     n,
	}
}

// Len returns the number of positions covered.
func (b *Bitmap) Len() int { return b.n }

// Get reports whether position pos is marked.
func (b *Bitmap) Get(pos int) bool {
	return b.words[pos/bitsPerWord]&(uintptr(1)<<(pos%bitsPerWord)) != 0
}

// Set marks position pos. (Nothing bad happens if it was already set.)
func (b *Bitmap) Set(pos int) {
	if pos < 0 || pos >= b.n {
		panic("genome.Bitmap: position out of range")
	}
	b.words[pos/bitsPerWord] |= uintptr(1) << (pos % bitsPerWord)
}

// Clear unmarks position pos.
func (b *Bitmap) Clear(pos int) {
	if pos < 0 || pos >= b.n {
		panic("genome.Bitmap: position out of range")
	}
	b.words[pos/bitsPerWord] &^= uintptr(1) << (pos % bitsPerWord)
}

// Count returns the number of marked positions.
func (b *Bitmap) Count() int {
	total := 0
	for _, w := range b.words {
		total += bits.OnesCount(uint(w))
	}
	return total
}
