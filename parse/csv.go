package parse

import (
	"bytes"
	"encoding/csv"

	"github.com/edittools/strucdiff/rows"
)

// Rows reads a delimited document into rows for multiset comparison.
// Rows may have differing cell counts.
func Rows(d []byte, opts ...ParseOption) ([]rows.Row, error) {
	po := newParseOpts(opts)
	r := csv.NewReader(bytes.NewReader(d))
	r.Comma = po.comma
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	res := make([]rows.Row, len(recs))
	for i, rec := range recs {
		res[i] = rows.Row(rec)
	}
	return res, nil
}
