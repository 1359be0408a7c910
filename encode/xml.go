package encode

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/edittools/strucdiff/ir"
)

func encodeXML(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.TextType:
		return writeEscaped(w, node.String)
	case ir.ElementType:
		if err := writeString(w, "<"+node.Tag); err != nil {
			return err
		}
		for _, a := range node.Attrs {
			if err := writeString(w, " "+a.Name+`="`); err != nil {
				return err
			}
			if err := writeEscaped(w, a.Value); err != nil {
				return err
			}
			if err := writeString(w, `"`); err != nil {
				return err
			}
		}
		if len(node.Values) == 0 {
			return writeString(w, "/>")
		}
		if err := writeString(w, ">"); err != nil {
			return err
		}
		if es.wire || textOnly(node) {
			for _, v := range node.Values {
				if err := encodeXML(v, w, es); err != nil {
					return err
				}
			}
		} else {
			es.depth++
			for _, v := range node.Values {
				if err := writeNL(w, es); err != nil {
					return err
				}
				if err := encodeXML(v, w, es); err != nil {
					return err
				}
			}
			es.depth--
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		return writeString(w, "</"+node.Tag+">")
	default:
		return fmt.Errorf("%w: cannot encode %s as %s", ErrEncoding, node.Type, es.format)
	}
}

func textOnly(node *ir.Node) bool {
	for _, v := range node.Values {
		if v.Type != ir.TextType {
			return false
		}
	}
	return true
}

func writeEscaped(w io.Writer, s string) error {
	buf := bytes.NewBuffer(nil)
	if err := xml.EscapeText(buf, []byte(s)); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
