package canon

import (
	"slices"
	"strings"

	"github.com/edittools/strucdiff/debug"
	"github.com/edittools/strucdiff/ir"
)

// Canonicalize returns a canonical deep copy of n. The input is never
// modified, and the result shares no nodes with it.
//
// In ModeFull and ModeOrdered, object fields and element attributes
// are sorted by name and whitespace-only text leaves are dropped.
// ModeFull additionally sorts array and element children by their
// canonical content (ir.Compare), stably, so sequence order stops
// mattering. ModeExact is a plain copy.
func Canonicalize(n *ir.Node, mode Mode) *ir.Node {
	res := n.Clone()
	if mode != ModeExact {
		canonNode(res, mode)
	}
	if debug.Canon() {
		debug.Logf("canon mode=%s hash=%x node=%v\n", mode.String(), res.Hash(), res)
	}
	return res
}

func canonNode(n *ir.Node, mode Mode) {
	switch n.Type {
	case ir.ObjectType:
		for _, v := range n.Values {
			canonNode(v, mode)
		}
		sortFields(n)
		reindex(n)
	case ir.ArrayType:
		for _, v := range n.Values {
			canonNode(v, mode)
		}
		if mode == ModeFull {
			slices.SortStableFunc(n.Values, ir.Compare)
		}
		reindex(n)
	case ir.ElementType:
		slices.SortStableFunc(n.Attrs, func(a, b ir.Attr) int {
			return strings.Compare(a.Name, b.Name)
		})
		vals := n.Values[:0]
		for _, v := range n.Values {
			if v.Type == ir.TextType && strings.TrimSpace(v.String) == "" {
				continue
			}
			canonNode(v, mode)
			vals = append(vals, v)
		}
		n.Values = vals
		if mode == ModeFull {
			slices.SortStableFunc(n.Values, ir.Compare)
		}
		reindex(n)
	}
}

type fieldVal struct {
	field, val *ir.Node
}

func sortFields(n *ir.Node) {
	pairs := make([]fieldVal, len(n.Fields))
	for i := range n.Fields {
		pairs[i] = fieldVal{n.Fields[i], n.Values[i]}
	}
	slices.SortStableFunc(pairs, func(a, b fieldVal) int {
		return strings.Compare(a.field.String, b.field.String)
	})
	for i := range pairs {
		n.Fields[i] = pairs[i].field
		n.Values[i] = pairs[i].val
		n.Values[i].ParentField = pairs[i].field.String
	}
}

func reindex(n *ir.Node) {
	for i, f := range n.Fields {
		f.Parent = n
		f.ParentIndex = i
	}
	for i, v := range n.Values {
		v.Parent = n
		v.ParentIndex = i
	}
}
