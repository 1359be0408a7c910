// Package rows compares tabular documents as multisets of rows.
//
// Order never matters here: Diff counts how often each row occurs on
// each side and reports the surplus rows of each. Row identity is the
// full cell tuple, so two rows are the same only if every cell
// matches exactly.
//
//	d, err := rows.Diff(a, b, rows.IgnoreHeader(true))
//	if d.Empty() {
//	    // same rows, any order
//	}
package rows
