package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/edittools/strucdiff/format"
	"github.com/edittools/strucdiff/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	format        format.Format
	wire          bool
}

// Encode writes node to w in the format selected by the options,
// defaulting to pretty-printed JSON. Data nodes (null, bool, number,
// string, array, object) encode as JSON or YAML; element and text
// nodes encode as XML. Asking a format for a node it cannot express
// is an ErrEncoding.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		format: format.JSONFormat,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		if err := encodeJSON(node, w, es); err != nil {
			return err
		}
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	case format.XMLFormat:
		if err := encodeXML(node, w, es); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: cannot encode nodes as %s", ErrEncoding, es.format)
	}
	if !es.wire {
		return writeString(w, "\n")
	}
	return nil
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, "null")
	case ir.BoolType:
		return writeString(w, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		return writeString(w, NumberLiteral(node))
	case ir.StringType:
		return writeString(w, jsonQuote(node.String))
	case ir.ArrayType:
		if len(node.Values) == 0 {
			return writeString(w, "[]")
		}
		if err := writeString(w, "["); err != nil {
			return err
		}
		es.depth++
		for i, v := range node.Values {
			if i > 0 {
				if err := writeString(w, ","); err != nil {
					return err
				}
			}
			if err := writeNL(w, es); err != nil {
				return err
			}
			if err := encodeJSON(v, w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
		return writeString(w, "]")
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			return writeString(w, "{}")
		}
		if err := writeString(w, "{"); err != nil {
			return err
		}
		es.depth++
		for i, f := range node.Fields {
			if i > 0 {
				if err := writeString(w, ","); err != nil {
					return err
				}
			}
			if err := writeNL(w, es); err != nil {
				return err
			}
			sep := ": "
			if es.wire {
				sep = ":"
			}
			if err := writeString(w, jsonQuote(f.String)+sep); err != nil {
				return err
			}
			if err := encodeJSON(node.Values[i], w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
		return writeString(w, "}")
	default:
		return fmt.Errorf("%w: cannot encode %s as %s", ErrEncoding, node.Type, es.format)
	}
}

// NumberLiteral renders a number node the way it would appear in JSON.
func NumberLiteral(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return node.Number
}

// jsonQuote quotes s as a JSON string. strconv.Quote is not used
// because it emits Go escapes that JSON does not accept.
func jsonQuote(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(d)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(strings.Repeat(" ", es.indent), es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
