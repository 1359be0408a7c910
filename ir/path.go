package ir

import (
	"strconv"
	"strings"
)

// Path returns the position of the node in its tree: "$" for the root,
// then ".field" under objects (quoted when the field needs it), "[i]"
// under arrays, and "/tag" or "/#text" under elements.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return y.Parent.Path() + "." + PathField(y.ParentField)
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	case ElementType:
		return y.Parent.Path() + "/" + ChildLabel(y)
	default:
		panic("parent but not in container")
	}
}

// PathField renders an object field name as a path segment, quoting it
// when it contains path syntax.
func PathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]/") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

// ChildLabel is the path segment of an element child: its tag, or
// "#text" for text leaves.
func ChildLabel(y *Node) string {
	if y.Type == TextType {
		return "#text"
	}
	return y.Tag
}
