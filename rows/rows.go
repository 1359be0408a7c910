package rows

import (
	"strconv"
	"strings"
)

// Row is one record of a tabular document, one string per cell.
type Row []string

// Key returns the identity of the row for multiset comparison. Cells
// are length-prefixed, so no choice of cell contents can make two
// different rows collide (["ab","c"] and ["a","bc"] stay distinct).
func (r Row) Key() string {
	var b strings.Builder
	for _, c := range r {
		b.WriteString(strconv.Itoa(len(c)))
		b.WriteByte(':')
		b.WriteString(c)
		b.WriteByte(';')
	}
	return b.String()
}

// Empty reports whether every cell is blank after trimming.
func (r Row) Empty() bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
