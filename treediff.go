package strucdiff

import (
	"slices"
	"strconv"

	"github.com/edittools/strucdiff/debug"
	"github.com/edittools/strucdiff/encode"
	"github.com/edittools/strucdiff/ir"
)

// Diff lazily compares two canonical trees and returns the sequence
// of differences between them. Inputs are never modified; run
// Canonicalize first so key order and markup whitespace do not show
// up as differences.
//
// Paths are seeded with the root element's tag for markup trees and
// with "$" for data trees.
func Diff(a, b *ir.Node) *Seq {
	return seqOf([]task{{a: a, b: b, path: seedPath(a, b)}})
}

func seedPath(a, b *ir.Node) string {
	if a.Type == ir.ElementType {
		return a.Tag
	}
	if b.Type == ir.ElementType {
		return b.Tag
	}
	return "$"
}

// compareTasks compares one node pair shallowly: it emits the records
// visible at this level and schedules child pairs, without descending
// itself.
func compareTasks(a, b *ir.Node, path string) []task {
	if debug.Diff() {
		debug.Logf("diff %s: %s vs %s\n", path, describe(a), describe(b))
	}
	if a.Type != b.Type {
		kind := TypeDiff
		if markup(a) && markup(b) {
			// Text where an element stands (or the reverse) is a
			// content difference, not a structural one.
			kind = ValueDiff
		}
		return []task{{rec: &Record{
			Kind:  kind,
			Path:  path,
			Left:  describe(a),
			Right: describe(b),
			Index: -1,
		}}}
	}
	switch a.Type {
	case ir.NullType:
		return nil
	case ir.BoolType, ir.NumberType, ir.StringType:
		if !scalarEqual(a, b) {
			return []task{{rec: valueRec(path, a, b)}}
		}
		return nil
	case ir.TextType:
		if a.String != b.String {
			return []task{{rec: valueRec(path, a, b)}}
		}
		return nil
	case ir.ArrayType:
		return arrayTasks(a, b, path)
	case ir.ObjectType:
		return objectTasks(a, b, path)
	case ir.ElementType:
		return elementTasks(a, b, path)
	}
	return nil
}

func arrayTasks(a, b *ir.Node, path string) []task {
	var tasks []task
	n := min(len(a.Values), len(b.Values))
	for i := 0; i < n; i++ {
		tasks = append(tasks, task{
			a:    a.Values[i],
			b:    b.Values[i],
			path: pathIndex(path, i),
		})
	}
	for i := n; i < len(a.Values); i++ {
		tasks = append(tasks, task{rec: extraRec(pathIndex(path, i), SideA, i, a.Values[i])})
	}
	for i := n; i < len(b.Values); i++ {
		tasks = append(tasks, task{rec: extraRec(pathIndex(path, i), SideB, i, b.Values[i])})
	}
	return tasks
}

// objectTasks walks the union of both key sets in lexicographic
// order, which is the order canonical objects store them in.
func objectTasks(a, b *ir.Node, path string) []task {
	var tasks []task
	i, j := 0, 0
	for i < len(a.Fields) && j < len(b.Fields) {
		ka, kb := a.Fields[i].String, b.Fields[j].String
		switch {
		case ka == kb:
			tasks = append(tasks, task{
				a:    a.Values[i],
				b:    b.Values[j],
				path: pathField(path, ka),
			})
			i++
			j++
		case ka < kb:
			tasks = append(tasks, task{rec: keyRec(pathField(path, ka), SideA)})
			i++
		default:
			tasks = append(tasks, task{rec: keyRec(pathField(path, kb), SideB)})
			j++
		}
	}
	for ; i < len(a.Fields); i++ {
		tasks = append(tasks, task{rec: keyRec(pathField(path, a.Fields[i].String), SideA)})
	}
	for ; j < len(b.Fields); j++ {
		tasks = append(tasks, task{rec: keyRec(pathField(path, b.Fields[j].String), SideB)})
	}
	return tasks
}

func elementTasks(a, b *ir.Node, path string) []task {
	var tasks []task
	if a.Tag != b.Tag {
		// Report the tag, then keep comparing: two renamed but
		// otherwise equal elements should produce one record.
		tasks = append(tasks, task{rec: &Record{
			Kind:  TypeDiff,
			Path:  path,
			Left:  describe(a),
			Right: describe(b),
			Index: -1,
		}})
	}
	if !slices.Equal(a.Attrs, b.Attrs) {
		tasks = append(tasks, task{rec: &Record{
			Kind:  AttrDiff,
			Path:  path,
			Left:  renderAttrs(a.Attrs),
			Right: renderAttrs(b.Attrs),
			Index: -1,
		}})
	}
	n := min(len(a.Values), len(b.Values))
	for i := 0; i < n; i++ {
		tasks = append(tasks, task{
			a:    a.Values[i],
			b:    b.Values[i],
			path: pathChild(path, a.Values[i]),
		})
	}
	for i := n; i < len(a.Values); i++ {
		tasks = append(tasks, task{rec: extraRec(pathChild(path, a.Values[i]), SideA, i, a.Values[i])})
	}
	for i := n; i < len(b.Values); i++ {
		tasks = append(tasks, task{rec: extraRec(pathChild(path, b.Values[i]), SideB, i, b.Values[i])})
	}
	return tasks
}

func markup(n *ir.Node) bool {
	return n.Type == ir.ElementType || n.Type == ir.TextType
}

func scalarEqual(a, b *ir.Node) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ir.NullType:
		return true
	case ir.BoolType:
		return a.Bool == b.Bool
	case ir.StringType:
		return a.String == b.String
	case ir.NumberType:
		return numEqual(a, b)
	}
	return false
}

// numEqual compares numbers across representations: 1 and 1.0 are
// the same number.
func numEqual(a, b *ir.Node) bool {
	switch {
	case a.Int64 != nil && b.Int64 != nil:
		return *a.Int64 == *b.Int64
	case a.Float64 != nil && b.Float64 != nil:
		return *a.Float64 == *b.Float64
	case a.Int64 != nil && b.Float64 != nil:
		return float64(*a.Int64) == *b.Float64
	case a.Float64 != nil && b.Int64 != nil:
		return *a.Float64 == float64(*b.Int64)
	}
	return encode.NumberLiteral(a) == encode.NumberLiteral(b)
}

func valueRec(path string, a, b *ir.Node) *Record {
	return &Record{
		Kind:  ValueDiff,
		Path:  path,
		Left:  renderValue(a),
		Right: renderValue(b),
		Index: -1,
	}
}

func keyRec(path string, side Side) *Record {
	return &Record{Kind: KeyOnly, Path: path, Side: side, Index: -1}
}

func extraRec(path string, side Side, idx int, n *ir.Node) *Record {
	rec := &Record{Kind: ExtraItem, Path: path, Side: side, Index: idx}
	if side == SideB {
		rec.Right = renderValue(n)
	} else {
		rec.Left = renderValue(n)
	}
	return rec
}

func pathField(path, field string) string {
	return path + "." + ir.PathField(field)
}

func pathIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func pathChild(path string, n *ir.Node) string {
	return path + "/" + ir.ChildLabel(n)
}
