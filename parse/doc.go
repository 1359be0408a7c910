// Package parse reads raw documents into the forms the comparison
// engine consumes: tree formats (JSON, XML, YAML) into ir.Node trees
// via Parse, and delimited text into rows via Rows.
//
//	node, err := parse.Parse(data, parse.WithFormat(format.XMLFormat))
//	table, err := parse.Rows(data, parse.WithComma(';'))
//
// Parsing is strict: a malformed document is an error, never a
// partial tree.
//
// # Related Packages
//
//   - github.com/edittools/strucdiff/ir - IR representation
//   - github.com/edittools/strucdiff/encode - Encode IR to text
package parse
