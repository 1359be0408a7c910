package render

import (
	"fmt"
	"strings"

	"github.com/edittools/strucdiff"
)

// Stats counts reported differences by kind.
type Stats struct {
	Counts map[strucdiff.RecordKind]int `json:"counts,omitempty"`
	Total  int                          `json:"total"`
}

func NewStats() *Stats {
	return &Stats{Counts: map[strucdiff.RecordKind]int{}}
}

func (s *Stats) Add(k strucdiff.RecordKind) {
	s.Counts[k]++
	s.Total++
}

// String summarizes the counts on one line, kinds in declaration
// order.
func (s *Stats) String() string {
	if s.Total == 0 {
		return "no differences"
	}
	word := "differences"
	if s.Total == 1 {
		word = "difference"
	}
	var parts []string
	for _, k := range strucdiff.Kinds() {
		if n := s.Counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, k))
		}
	}
	return fmt.Sprintf("%d %s (%s)", s.Total, word, strings.Join(parts, ", "))
}
