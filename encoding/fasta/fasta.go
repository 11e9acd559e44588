// Package fasta reads FASTA-formatted sequence files.  Briefly, FASTA
// files consist of a number of named sequences whose bases may be
// interrupted by newlines.  For example:
//
// >mutant
// ACGTAC
// GAGGAC
// GCG
// >reference
// ACGT
//
// Sequence names are the stretch of characters excluding spaces
// immediately after '>'; any text after a space is ignored, so
// '>chr1 a recoded segment' becomes 'chr1'.
package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Seq is one named sequence from a FASTA file.
type Seq struct {
	// Name is the sequence name from the '>' header line.
	Name string
	// Bases is the sequence with newlines removed, uppercased.
	Bases string
}

// Read parses all sequences from r, preserving file order.
func Read(r io.Reader) ([]Seq, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1024*1024*300)
	var (
		seqs  []Seq
		name  string
		bases strings.Builder
		open  bool
	)
	flush := func() {
		seqs = append(seqs, Seq{Name: name, Bases: strings.ToUpper(bases.String())})
		bases.Reset()
	}
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if open {
				flush()
			}
			name = strings.SplitN(line[1:], " ", 2)[0]
			if name == "" {
				return nil, errors.Errorf("malformed FASTA file: empty sequence name")
			}
			open = true
			continue
		}
		if !open {
			return nil, errors.Errorf("malformed FASTA file: data before first header")
		}
		bases.WriteString(strings.TrimSpace(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if open {
		flush()
	}
	if len(seqs) == 0 {
		return nil, errors.Errorf("empty FASTA file")
	}
	return seqs, nil
}

// First parses r and returns only the first sequence; convenient for
// single-genome files.
func First(r io.Reader) (Seq, error) {
	seqs, err := Read(r)
	if err != nil {
		return Seq{}, err
	}
	return seqs[0], nil
}
