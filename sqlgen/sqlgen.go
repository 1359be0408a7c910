// Package sqlgen turns tabular rows into SQL INSERT statements.
package sqlgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/edittools/strucdiff/rows"
)

// ConfigError reports missing or unusable generator configuration.
type ConfigError struct {
	Option string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Option, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

type genOpts struct {
	columns []string
	header  bool
	batch   int
}

type Option func(*genOpts)

// Columns names the insert columns explicitly. Every row must have
// exactly this many cells.
func Columns(cols []string) Option {
	return func(o *genOpts) { o.columns = cols }
}

// Header takes column names from the first row.
func Header(v bool) Option {
	return func(o *genOpts) { o.header = v }
}

// Batch groups n rows into one multi-row INSERT. The default is one
// statement per row.
func Batch(n int) Option {
	return func(o *genOpts) { o.batch = n }
}

// Insert renders the rows as INSERT statements for the named table,
// one per line. Empty cells become NULL, numeric cells stay bare, and
// everything else is single-quoted.
func Insert(table string, rs []rows.Row, opts ...Option) (string, error) {
	o := &genOpts{batch: 1}
	for _, opt := range opts {
		opt(o)
	}
	if table == "" {
		return "", &ConfigError{Option: "table", Err: errors.New("missing table name")}
	}
	if o.batch < 1 {
		return "", &ConfigError{Option: "batch", Err: fmt.Errorf("%d is not a row count", o.batch)}
	}
	cols := o.columns
	if o.header {
		if len(rs) == 0 {
			return "", &ConfigError{Option: "header", Err: errors.New("no header row")}
		}
		cols = rs[0]
		rs = rs[1:]
	}
	for i, r := range rs {
		if len(cols) > 0 && len(r) != len(cols) {
			return "", fmt.Errorf("row %d has %d cells, want %d", i+1, len(r), len(cols))
		}
	}

	head := "INSERT INTO " + ident(table)
	if len(cols) > 0 {
		quoted := make([]string, len(cols))
		for i, c := range cols {
			quoted[i] = ident(c)
		}
		head += " (" + strings.Join(quoted, ", ") + ")"
	}
	head += " VALUES "

	var sb strings.Builder
	for len(rs) > 0 {
		n := min(o.batch, len(rs))
		sb.WriteString(head)
		for i, r := range rs[:n] {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeTuple(&sb, r)
		}
		sb.WriteString(";\n")
		rs = rs[n:]
	}
	return sb.String(), nil
}

func writeTuple(sb *strings.Builder, r rows.Row) {
	sb.WriteByte('(')
	for i, cell := range r {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(value(cell))
	}
	sb.WriteByte(')')
}

// value renders one cell as a SQL literal.
func value(cell string) string {
	if cell == "" {
		return "NULL"
	}
	if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return cell
	}
	if _, err := strconv.ParseFloat(cell, 64); err == nil {
		return cell
	}
	return "'" + strings.ReplaceAll(cell, "'", "''") + "'"
}

// ident quotes a table or column name unless it is a plain
// identifier.
func ident(name string) string {
	plain := name != ""
	for i, r := range name {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9':
			if i == 0 {
				plain = false
			}
		default:
			plain = false
		}
	}
	if plain {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
