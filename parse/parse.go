package parse

import (
	"fmt"

	"github.com/edittools/strucdiff/debug"
	"github.com/edittools/strucdiff/format"
	"github.com/edittools/strucdiff/ir"
)

// Parse reads a tree document into its node form. The format defaults
// to JSON; use WithFormat to select XML or YAML. Text and CSV
// documents have no tree form and are rejected.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	po := newParseOpts(opts)
	var (
		node *ir.Node
		err  error
	)
	switch po.format {
	case format.JSONFormat:
		node, err = parseJSON(d)
	case format.YAMLFormat:
		node, err = parseYAML(d)
	case format.XMLFormat:
		node, err = parseXML(d)
	default:
		return nil, fmt.Errorf("%w: %s documents do not parse to nodes", format.ErrBadFormat, po.format)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s: %v\n", po.format.String(), node)
	}
	return node, nil
}

func appendChild(p, c *ir.Node) {
	c.Parent = p
	c.ParentIndex = len(p.Values)
	p.Values = append(p.Values, c)
}
