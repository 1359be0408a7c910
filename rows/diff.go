package rows

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/edittools/strucdiff/debug"
)

// Delta is the symmetric difference of two row multisets. A row that
// occurs n times on one side and m times on the other contributes
// |n-m| copies to the side with more occurrences.
type Delta struct {
	OnlyInFirst  []Row
	OnlyInSecond []Row
}

func (d *Delta) Empty() bool {
	return len(d.OnlyInFirst) == 0 && len(d.OnlyInSecond) == 0
}

type diffOpts struct {
	ignoreHeader    bool
	ignoreEmptyRows bool
	where           string
}

type DiffOpt func(*diffOpts)

// IgnoreHeader drops the first row of each side before comparing.
func IgnoreHeader(v bool) DiffOpt {
	return func(o *diffOpts) { o.ignoreHeader = v }
}

// IgnoreEmptyRows drops rows whose cells are all blank. It defaults
// to true.
func IgnoreEmptyRows(v bool) DiffOpt {
	return func(o *diffOpts) { o.ignoreEmptyRows = v }
}

// Where keeps only rows for which the expression evaluates to true.
// The expression sees the variables cells ([]string) and index (int).
func Where(e string) DiffOpt {
	return func(o *diffOpts) { o.where = e }
}

// ConfigError reports an unusable option value, such as a Where
// expression that does not compile.
type ConfigError struct {
	Option string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Option, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Diff compares two row multisets and returns the rows each side has
// that the other does not, counting duplicates. Result order follows
// first appearance in the inputs, first side first.
func Diff(a, b []Row, opts ...DiffOpt) (*Delta, error) {
	o := &diffOpts{ignoreEmptyRows: true}
	for _, opt := range opts {
		opt(o)
	}
	aRows, err := o.filter(a)
	if err != nil {
		return nil, err
	}
	bRows, err := o.filter(b)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	sample := map[string]Row{}
	order := []string{}
	note := func(r Row) string {
		k := r.Key()
		if _, seen := counts[k]; !seen {
			order = append(order, k)
			sample[k] = r
		}
		return k
	}
	for _, r := range aRows {
		counts[note(r)]++
	}
	for _, r := range bRows {
		counts[note(r)]--
	}

	delta := &Delta{}
	for _, k := range order {
		c := counts[k]
		for ; c > 0; c-- {
			delta.OnlyInFirst = append(delta.OnlyInFirst, sample[k])
		}
		for ; c < 0; c++ {
			delta.OnlyInSecond = append(delta.OnlyInSecond, sample[k])
		}
	}
	if debug.Rows() {
		debug.Logf("rows diff: %d vs %d rows, %d/%d unmatched\n",
			len(aRows), len(bRows), len(delta.OnlyInFirst), len(delta.OnlyInSecond))
	}
	return delta, nil
}

func (o *diffOpts) filter(in []Row) ([]Row, error) {
	rows := in
	if o.ignoreHeader && len(rows) > 0 {
		rows = rows[1:]
	}
	var prg *vm.Program
	if o.where != "" {
		var err error
		prg, err = expr.Compile(o.where,
			expr.Env(whereEnv{}),
			expr.AsBool(),
		)
		if err != nil {
			return nil, &ConfigError{Option: "where", Err: err}
		}
	}
	res := make([]Row, 0, len(rows))
	for i, r := range rows {
		if o.ignoreEmptyRows && r.Empty() {
			continue
		}
		if prg != nil {
			out, err := expr.Run(prg, whereEnv{Cells: r, Index: i})
			if err != nil {
				return nil, &ConfigError{Option: "where", Err: err}
			}
			if keep, ok := out.(bool); !ok || !keep {
				continue
			}
		}
		res = append(res, r)
	}
	return res, nil
}

type whereEnv struct {
	Cells []string `expr:"cells"`
	Index int      `expr:"index"`
}
