package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/edittools/strucdiff/ir"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := toAny(node, es)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

// toAny converts a data node to the shape yaml.Marshal expects,
// using yaml.MapSlice so canonical field order survives encoding.
func toAny(node *ir.Node, es *EncState) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		return node.Number, nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			av, err := toAny(v, es)
			if err != nil {
				return nil, err
			}
			res[i] = av
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			av, err := toAny(node.Values[i], es)
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: f.String, Value: av}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: cannot encode %s as %s", ErrEncoding, node.Type, es.format)
	}
}
