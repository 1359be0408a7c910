package encode

import "github.com/edittools/strucdiff/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeWire produces single-line output with no trailing newline.
// YAML keeps its block form regardless.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
