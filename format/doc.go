// Package format names the document formats the comparison engine and
// its adapters understand.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	if f.IsTree() {
//		// parse into a node tree before diffing
//	}
//
// Formats marshal to and from their lowercase names, so they can be used
// directly as flag and config values.
//
// # Related Packages
//
//   - github.com/edittools/strucdiff/parse - Parse text to nodes
//   - github.com/edittools/strucdiff/encode - Encode nodes to text
package format
