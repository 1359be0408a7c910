// Package ir provides the canonical node model shared by all tree
// comparison.
//
// # Overview
//
// Every document the engine compares (JSON, YAML, XML) is first parsed
// into an ir.Node tree. The comparison machinery only ever sees nodes,
// so one canonicalizer and one differ cover every input format; format
// differences end at the parser adapters.
//
// The IR contains no position information from input documents, making
// it purely semantic.
//
// # Node Structure
//
// A Node represents a single value. Nodes can be:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (key-value pairs), array (ordered list)
//   - Markup types: element (tagged, with attributes) and text leaves
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64, float64, or raw text)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//   - ElementType: labeled markup element with attributes
//   - TextType: character data under an element
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//	el := ir.FromElement("rect", []ir.Attr{{Name: "width", Value: "4"}},
//	    []*ir.Node{ir.FromText("hi")})
//
// # Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at
// Values[i], so there are always as many fields as values. Fields are
// string typed and, in canonical trees, unique and sorted. FromMap
// produces canonical field order.
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: as a string fallback if neither can represent it
//
// ElementType nodes use Tag for the element name, Attrs for
// attributes, and Values for children, each of which is an element or
// a text leaf. TextType leaves appear only under elements.
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships:
//
//   - Parent: parent node (nil for root)
//   - ParentIndex: index in parent's array/object/element
//   - ParentField: field name if parent is object
//
// Use Path() to locate a node:
//
//	path := node.Path() // e.g. "$.foo.bar[0]", "$/svg/rect"
//
// # Comparison and Hashing
//
// Compare defines a total structural order over nodes, used for
// content-based sorting:
//
//	equal := ir.Compare(a, b) == 0
//
// Hash returns a structural hash consistent with Compare within a
// process:
//
//	h := node.Hash()
//
// # Thread Safety
//
// Node structures are not thread-safe. Trees are built once and then
// treated as immutable; clone before mutating a shared tree.
//
// # Related Packages
//
//   - github.com/edittools/strucdiff/parse - Parses text into IR nodes
//   - github.com/edittools/strucdiff/canon - Canonical form for comparison
//   - github.com/edittools/strucdiff/encode - Encodes IR nodes to text
package ir
