package parse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/edittools/strucdiff/ir"
)

func parseXML(d []byte) (*ir.Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(d))
	var (
		root  *ir.Node
		stack []*ir.Node
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make([]ir.Attr, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, ir.Attr{Name: attrName(a.Name), Value: a.Value})
			}
			el := ir.FromElement(t.Name.Local, attrs, nil)
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = el
			} else {
				appendChild(stack[len(stack)-1], el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			appendText(stack[len(stack)-1], string(t))
		}
		// Comments, processing instructions and directives carry no
		// structure and are skipped.
	}
	if root == nil {
		return nil, fmt.Errorf("no root element")
	}
	return root, nil
}

func attrName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// appendText merges adjacent character data so entity boundaries and
// CDATA sections do not split one logical text run.
func appendText(p *ir.Node, s string) {
	if n := len(p.Values); n > 0 && p.Values[n-1].Type == ir.TextType {
		p.Values[n-1].String += s
		return
	}
	appendChild(p, ir.FromText(s))
}
