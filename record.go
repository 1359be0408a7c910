package strucdiff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/edittools/strucdiff/encode"
	"github.com/edittools/strucdiff/format"
	"github.com/edittools/strucdiff/ir"
)

// RecordKind says what a single diff record reports.
type RecordKind int

const (
	// TypeDiff reports nodes of different types, or elements with
	// different tags, at the same path.
	TypeDiff RecordKind = iota
	// ValueDiff reports unequal scalar or text values.
	ValueDiff
	// KeyOnly reports an object key present on one side only.
	KeyOnly
	// AttrDiff reports that an element's attributes differ. At most
	// one is emitted per element, however many attributes disagree.
	AttrDiff
	// ExtraItem reports a sequence or element child beyond the end of
	// the shorter side, one record per extra index.
	ExtraItem
	// LineDiff reports unequal text lines at the same line index.
	LineDiff
	// ExtraLine reports a text line beyond the end of the shorter side.
	ExtraLine
	// RowOnly reports a row one multiset has more copies of.
	RowOnly
)

func (k RecordKind) String() string {
	s, ok := map[RecordKind]string{
		TypeDiff:  "TypeDiff",
		ValueDiff: "ValueDiff",
		KeyOnly:   "KeyOnly",
		AttrDiff:  "AttrDiff",
		ExtraItem: "ExtraItem",
		LineDiff:  "LineDiff",
		ExtraLine: "ExtraLine",
		RowOnly:   "RowOnly",
	}[k]
	if ok {
		return s
	}
	return "<unknown record kind>"
}

func (k RecordKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Kinds lists every record kind in declaration order.
func Kinds() []RecordKind {
	return []RecordKind{
		TypeDiff,
		ValueDiff,
		KeyOnly,
		AttrDiff,
		ExtraItem,
		LineDiff,
		ExtraLine,
		RowOnly,
	}
}

// Side names the input document a one-sided record refers to.
type Side int

const (
	NoSide Side = iota
	SideA
	SideB
)

func (s Side) String() string {
	switch s {
	case SideA:
		return "first"
	case SideB:
		return "second"
	default:
		return ""
	}
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Record is one reported difference. Path locates it, Side is set on
// one-sided records, Left and Right carry rendered forms from each
// side, and Index is the item or line index for positional records
// (-1 elsewhere).
type Record struct {
	Kind  RecordKind `json:"kind"`
	Path  string     `json:"path,omitempty"`
	Side  Side       `json:"side,omitempty"`
	Left  string     `json:"left,omitempty"`
	Right string     `json:"right,omitempty"`
	Index int        `json:"index"`
}

func (r *Record) String() string {
	switch r.Kind {
	case TypeDiff:
		return fmt.Sprintf("%s: type differs: %s != %s", r.Path, r.Left, r.Right)
	case ValueDiff:
		return fmt.Sprintf("%s: %s != %s", r.Path, r.Left, r.Right)
	case KeyOnly:
		return fmt.Sprintf("%s: only in %s", r.Path, r.Side)
	case AttrDiff:
		return fmt.Sprintf("%s: attributes differ: %s != %s", r.Path, r.Left, r.Right)
	case ExtraItem:
		return fmt.Sprintf("%s: extra item in %s: %s", r.Path, r.Side, r.value())
	case LineDiff:
		return fmt.Sprintf("line %d: %q != %q", r.Index+1, r.Left, r.Right)
	case ExtraLine:
		return fmt.Sprintf("line %d: only in %s: %q", r.Index+1, r.Side, r.value())
	case RowOnly:
		return fmt.Sprintf("row only in %s: %s", r.Side, r.value())
	default:
		return fmt.Sprintf("<unknown record kind %d>", r.Kind)
	}
}

// value returns whichever of Left and Right a one-sided record set.
func (r *Record) value() string {
	if r.Side == SideB {
		return r.Right
	}
	return r.Left
}

// describe renders a node's shape for TypeDiff records: scalars by
// value, containers by size, elements by tag.
func describe(n *ir.Node) string {
	switch n.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return strconv.FormatBool(n.Bool)
	case ir.NumberType:
		return encode.NumberLiteral(n)
	case ir.StringType:
		return strconv.Quote(n.String)
	case ir.ArrayType:
		return fmt.Sprintf("array[%d]", len(n.Values))
	case ir.ObjectType:
		return fmt.Sprintf("object{%d}", len(n.Fields))
	case ir.ElementType:
		return "<" + n.Tag + ">"
	case ir.TextType:
		return "text " + strconv.Quote(n.String)
	default:
		return "<unknown node>"
	}
}

// renderValue renders a node's full content on one line: data nodes
// as JSON, markup nodes as XML.
func renderValue(n *ir.Node) string {
	switch n.Type {
	case ir.ElementType:
		return encode.MustString(n,
			encode.EncodeFormat(format.XMLFormat), encode.EncodeWire(true))
	case ir.TextType:
		return strconv.Quote(n.String)
	default:
		return encode.MustString(n, encode.EncodeWire(true))
	}
}

func renderAttrs(attrs []ir.Attr) string {
	if len(attrs) == 0 {
		return "(none)"
	}
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = a.Name + "=" + strconv.Quote(a.Value)
	}
	return strings.Join(parts, " ")
}
