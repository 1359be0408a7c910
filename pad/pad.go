// Package pad pads strings to a display width. Widths count runes,
// and strings already at or past the width come back unchanged.
package pad

import (
	"strings"
	"unicode/utf8"
)

// Left pads s on the left, right-aligning it.
func Left(s string, width int, fill rune) string {
	return strings.Repeat(string(fill), missing(s, width)) + s
}

// Right pads s on the right, left-aligning it.
func Right(s string, width int, fill rune) string {
	return s + strings.Repeat(string(fill), missing(s, width))
}

// Center pads s on both sides. An odd cell goes on the right.
func Center(s string, width int, fill rune) string {
	m := missing(s, width)
	left := m / 2
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), m-left)
}

func missing(s string, width int) int {
	n := width - utf8.RuneCountInString(s)
	if n < 0 {
		return 0
	}
	return n
}
