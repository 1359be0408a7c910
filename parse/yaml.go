package parse

import (
	"github.com/goccy/go-yaml"

	"github.com/edittools/strucdiff/ir"
)

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return fromAny(v)
}
