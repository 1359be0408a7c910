package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/edittools/strucdiff/encode"
	"github.com/edittools/strucdiff/format"
	"github.com/edittools/strucdiff/ir"
)

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = nodeString(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func nodeString(x *ir.Node) string {
	f := format.JSONFormat
	if x.Type == ir.ElementType || x.Type == ir.TextType {
		f = format.XMLFormat
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf, encode.EncodeFormat(f), encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("[raw] %v", x)
	}
	return buf.String()
}
