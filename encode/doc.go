// Package encode encodes IR nodes to text.
//
// # Usage
//
//	// Encode to JSON (the default)
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode to YAML
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
//	// Compact single-line form
//	s := encode.MustString(node, encode.EncodeWire(true))
//
// Element and text nodes encode as XML; data nodes encode as JSON or
// YAML. Encoding a node in a format that cannot express it returns
// ErrEncoding.
//
// # Related Packages
//
//   - github.com/edittools/strucdiff/ir - IR representation
//   - github.com/edittools/strucdiff/parse - Parse text to IR
package encode
