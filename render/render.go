// Package render writes diff records for people: one line per
// record, optional ANSI color keyed by record kind, and a summary of
// counts. Rendering never feeds back into comparison.
package render

import (
	"fmt"
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/edittools/strucdiff"
)

type printer struct {
	colors *Colors
}

type Option func(*printer)

// WithColors renders with the given color table; nil means plain
// text.
func WithColors(c *Colors) Option {
	return func(p *printer) { p.colors = c }
}

// Records drains the sequence to w, one record per line, and returns
// counts by kind.
func Records(w io.Writer, s *strucdiff.Seq, opts ...Option) (*Stats, error) {
	p := &printer{}
	for _, opt := range opts {
		opt(p)
	}
	stats := NewStats()
	for {
		rec, ok := s.Next()
		if !ok {
			return stats, nil
		}
		stats.Add(rec.Kind)
		if _, err := fmt.Fprintln(w, Line(rec, p.colors)); err != nil {
			return stats, err
		}
	}
}

// Line renders one record, colored when c is non-nil. Changed line
// pairs render as two marked lines with the changed spans
// highlighted.
func Line(rec *strucdiff.Record, c *Colors) string {
	if c == nil {
		return rec.String()
	}
	if rec.Kind == strucdiff.LineDiff {
		return linePair(rec, c)
	}
	return c.Get(rec.Kind, rec.Side)(rec.String())
}

// linePair shows a changed line pair with intra-line highlighting.
// The character diff here is presentation only; detection already
// happened.
func linePair(rec *strucdiff.Record, c *Colors) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(rec.Left, rec.Right, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	var left, right strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			left.WriteString(d.Text)
			right.WriteString(d.Text)
		case diffpatch.DiffDelete:
			left.WriteString(c.Del(d.Text))
		case diffpatch.DiffInsert:
			right.WriteString(c.Ins(d.Text))
		}
	}
	return fmt.Sprintf("line %d:\n- %s\n+ %s", rec.Index+1, left.String(), right.String())
}
