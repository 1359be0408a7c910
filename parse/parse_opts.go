package parse

import "github.com/edittools/strucdiff/format"

type parseOpts struct {
	format format.Format
	comma  rune
}

type ParseOption func(*parseOpts)

func newParseOpts(opts []ParseOption) *parseOpts {
	po := &parseOpts{
		format: format.JSONFormat,
		comma:  ',',
	}
	for _, opt := range opts {
		opt(po)
	}
	return po
}

func WithFormat(f format.Format) ParseOption {
	return func(po *parseOpts) { po.format = f }
}

// WithComma sets the cell delimiter for Rows. The delimiter is always
// explicit; nothing here guesses it from the input.
func WithComma(c rune) ParseOption {
	return func(po *parseOpts) { po.comma = c }
}
