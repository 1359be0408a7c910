package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/edittools/strucdiff"
	"github.com/edittools/strucdiff/format"
	"github.com/edittools/strucdiff/render"
)

func rows(cfg *RowsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rows.Parse(cc, args)
	if err != nil {
		cfg.Rows.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: rows requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	b, err := readInput(cc, args[1])
	if err != nil {
		return err
	}
	comma, err := delimRune(cfg.Delim)
	if err != nil {
		return err
	}

	opts := []strucdiff.CompareOpt{
		strucdiff.WithComma(comma),
		strucdiff.IgnoreHeader(cfg.Header),
		strucdiff.IgnoreEmptyRows(!cfg.KeepEmpty),
	}
	if cfg.Where != "" {
		opts = append(opts, strucdiff.Where(cfg.Where))
	}
	seq, err := strucdiff.Compare(string(a), string(b), format.CSVFormat, opts...)
	if err != nil {
		return err
	}
	stats, err := render.Records(cc.Out, seq, render.WithColors(cfg.colors(cc.Out)))
	if err != nil {
		return err
	}
	if stats.Total > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
