package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/edittools/strucdiff/parse"
	"github.com/edittools/strucdiff/sqlgen"
)

func sql(cfg *SQLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.SQL.Parse(cc, args)
	if err != nil {
		cfg.SQL.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: sql takes at most one file, got %v", cli.ErrUsage, args)
	}
	arg := "-"
	if len(args) == 1 {
		arg = args[0]
	}
	d, err := readInput(cc, arg)
	if err != nil {
		return err
	}
	comma, err := delimRune(cfg.Delim)
	if err != nil {
		return err
	}

	rs, err := parse.Rows(d, parse.WithComma(comma))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	out, err := sqlgen.Insert(cfg.Table, rs,
		sqlgen.Header(cfg.Header), sqlgen.Batch(cfg.Batch))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cc.Out, out)
	return err
}
