package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/edittools/strucdiff/ir"
)

func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, fmt.Errorf("trailing data after document")
	}
	return fromAny(v)
}

// fromAny converts decoded JSON or YAML values to nodes. Duplicate
// object keys were already resolved last-write-wins by the decoders.
func fromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case json.Number:
		return ir.FromNumber(x.String()), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x <= math.MaxInt64 {
			return ir.FromInt(int64(x)), nil
		}
		return ir.FromNumber(strconv.FormatUint(x, 10)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, e := range x {
			n, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, e := range x {
			n, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	case map[any]any:
		m := make(map[string]*ir.Node, len(x))
		for k, e := range x {
			n, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			m[fmt.Sprint(k)] = n
		}
		return ir.FromMap(m), nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}
