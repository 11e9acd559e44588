package primercandidate

import (
	"context"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
)

const missingField = "."

func writeFloat(w *tsv.Writer, v float64) {
	w.WriteString(strconv.FormatFloat(v, 'f', 3, 64))
}

func writePrimer(w *tsv.Writer, role string, t Target, p *CandidatePrimer) {
	w.WriteString(kindName(t.Kind))
	w.WriteString(strconv.Itoa(t.Idx))
	w.WriteString(strandName(t.Strand))
	w.WriteString(role)
	if p == nil {
		w.WriteString("0") // found
		for i := 0; i < 7; i++ {
			w.WriteString(missingField)
		}
		return
	}
	w.WriteString("1")
	w.WriteString(strconv.Itoa(p.Idx))
	w.WriteString(strconv.Itoa(p.Length))
	w.WriteString(p.Seq)
	writeFloat(w, p.Tm)
	writeFloat(w, p.TmHairpin)
	writeFloat(w, p.TmHomo)
	writeFloat(w, p.Score)
}

func kindName(k TargetKind) string {
	if k == KindCommon {
		return "common"
	}
	return "discriminatory"
}

func strandName(s Strand) string {
	if s == Rev {
		return "-"
	}
	return "+"
}

// WriteResultsTSV writes one row per primer record to a TSV file at
// path.  Discriminatory results emit a mutant row and a wildtype row;
// common results emit a single row.  Targets whose search failed or
// found nothing emit rows with found=0 and '.' placeholders.
func WriteResultsTSV(ctx context.Context, path string, results []Result) (err error) {
	var dst file.File
	if dst, err = file.Create(ctx, path); err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, dst, &err)
	w := tsv.NewWriter(dst.Writer(ctx))
	w.WriteString("#kind\ttarget_idx\tstrand\trole\tfound\tidx\tlength\tseq\ttm\ttm_hairpin\ttm_homodimer\tscore")
	if err = w.EndLine(); err != nil {
		return err
	}
	for _, r := range results {
		switch r.Target.Kind {
		case KindCommon:
			writePrimer(w, "common", r.Target, r.Common)
			if err = w.EndLine(); err != nil {
				return err
			}
		default:
			writePrimer(w, "mutant", r.Target, r.Mutant)
			if err = w.EndLine(); err != nil {
				return err
			}
			writePrimer(w, "wildtype", r.Target, r.Wildtype)
			if err = w.EndLine(); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}
