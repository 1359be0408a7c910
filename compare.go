package strucdiff

import (
	"fmt"
	"strings"

	"github.com/edittools/strucdiff/canon"
	"github.com/edittools/strucdiff/format"
	"github.com/edittools/strucdiff/parse"
	"github.com/edittools/strucdiff/rows"
)

// ParseError reports that one side's document failed to parse.
// Nothing is compared when either side is malformed.
type ParseError struct {
	Side Side
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s document: %v", e.Side, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type compareOpts struct {
	mode    canon.Mode
	comma   rune
	rowOpts []rows.DiffOpt
}

type CompareOpt func(*compareOpts)

// WithMode selects how much of the documents' form matters: ModeFull
// ignores sequence order, ModeOrdered keeps it, ModeExact compares
// raw text. The default is ModeFull.
func WithMode(m canon.Mode) CompareOpt {
	return func(o *compareOpts) { o.mode = m }
}

// WithComma sets the cell delimiter for CSV comparison.
func WithComma(c rune) CompareOpt {
	return func(o *compareOpts) { o.comma = c }
}

// IgnoreHeader drops the first row of each CSV side before comparing.
func IgnoreHeader(v bool) CompareOpt {
	return func(o *compareOpts) { o.rowOpts = append(o.rowOpts, rows.IgnoreHeader(v)) }
}

// IgnoreEmptyRows drops all-blank CSV rows. It defaults to true.
func IgnoreEmptyRows(v bool) CompareOpt {
	return func(o *compareOpts) { o.rowOpts = append(o.rowOpts, rows.IgnoreEmptyRows(v)) }
}

// Where filters CSV rows before comparing; see rows.Where.
func Where(e string) CompareOpt {
	return func(o *compareOpts) { o.rowOpts = append(o.rowOpts, rows.Where(e)) }
}

// Compare parses two documents of the given format and returns the
// sequence of differences between them. Tree formats (JSON, XML,
// YAML) are compared structurally, CSV as a row multiset, and text
// positionally by line. ModeExact compares any format as raw text.
//
// A document that fails to parse aborts the comparison with a
// *ParseError naming the offending side.
func Compare(a, b string, f format.Format, opts ...CompareOpt) (*Seq, error) {
	o := &compareOpts{mode: canon.ModeFull, comma: ','}
	for _, opt := range opts {
		opt(o)
	}
	switch {
	case f == format.TextFormat || o.mode == canon.ModeExact:
		return TextDiff(a, b), nil
	case f == format.CSVFormat:
		ra, err := parse.Rows([]byte(a), parse.WithComma(o.comma))
		if err != nil {
			return nil, &ParseError{Side: SideA, Err: err}
		}
		rb, err := parse.Rows([]byte(b), parse.WithComma(o.comma))
		if err != nil {
			return nil, &ParseError{Side: SideB, Err: err}
		}
		delta, err := rows.Diff(ra, rb, o.rowOpts...)
		if err != nil {
			return nil, err
		}
		return rowSeq(delta), nil
	default:
		na, err := parse.Parse([]byte(a), parse.WithFormat(f))
		if err != nil {
			return nil, &ParseError{Side: SideA, Err: err}
		}
		nb, err := parse.Parse([]byte(b), parse.WithFormat(f))
		if err != nil {
			return nil, &ParseError{Side: SideB, Err: err}
		}
		return Diff(canon.Canonicalize(na, o.mode), canon.Canonicalize(nb, o.mode)), nil
	}
}

// rowSeq adapts a row delta into records, the first side's surplus
// rows first.
func rowSeq(d *rows.Delta) *Seq {
	var tasks []task
	for _, r := range d.OnlyInFirst {
		tasks = append(tasks, task{rec: &Record{
			Kind: RowOnly, Side: SideA, Left: renderRow(r), Index: -1,
		}})
	}
	for _, r := range d.OnlyInSecond {
		tasks = append(tasks, task{rec: &Record{
			Kind: RowOnly, Side: SideB, Right: renderRow(r), Index: -1,
		}})
	}
	return seqOf(tasks)
}

func renderRow(r rows.Row) string {
	return strings.Join(r, ",")
}
