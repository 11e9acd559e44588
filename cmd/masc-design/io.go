package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/mascpcr/masc/primercandidate"
)

// readTargets parses a targets TSV: one target per line as
// kind<TAB>idx<TAB>strand, where kind is 'discriminatory' or 'common',
// idx is a 0-based genome coordinate, and strand is '+' or '-'.
// Blank lines and lines starting with '#' are ignored.
func readTargets(path string) ([]primercandidate.Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var targets []primercandidate.Target
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 3 {
			return nil, errors.E("line", lineNum, ": expected 3 tab-separated columns, got", len(cols))
		}
		var t primercandidate.Target
		switch cols[0] {
		case "discriminatory", "disc":
			t.Kind = primercandidate.KindDiscriminatory
		case "common":
			t.Kind = primercandidate.KindCommon
		default:
			return nil, errors.E("line", lineNum, ": unknown target kind", cols[0])
		}
		if t.Idx, err = strconv.Atoi(cols[1]); err != nil {
			return nil, errors.E("line", lineNum, ": bad coordinate", cols[1])
		}
		switch cols[2] {
		case "+":
			t.Strand = primercandidate.Fwd
		case "-":
			t.Strand = primercandidate.Rev
		default:
			return nil, errors.E("line", lineNum, ": bad strand", cols[2])
		}
		targets = append(targets, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, errors.E("no targets in", path)
	}
	return targets, nil
}

// readEdges parses a file of 0-based genome positions, one per line.
func readEdges(path string, genomeLen int) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var edges []int
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		pos, err := strconv.Atoi(line)
		if err != nil {
			return nil, errors.E("line", lineNum, ": bad position", line)
		}
		if pos < 0 || pos >= genomeLen {
			return nil, errors.E("line", lineNum, ": position", pos, "outside genome of length", genomeLen)
		}
		edges = append(edges, pos)
	}
	return edges, scanner.Err()
}
