package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/edittools/strucdiff"
	"github.com/edittools/strucdiff/canon"
	"github.com/edittools/strucdiff/format"
	"github.com/edittools/strucdiff/render"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	b, err := readInput(cc, args[1])
	if err != nil {
		return err
	}

	f := format.ForPath(args[0])
	if cfg.Kind != nil {
		f = *cfg.Kind
	}
	mode := canon.ModeFull
	if cfg.Mode != "" {
		mode, err = canon.ParseMode(cfg.Mode)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}

	seq, err := strucdiff.Compare(string(a), string(b), f, strucdiff.WithMode(mode))
	if err != nil {
		return err
	}
	stats, err := render.Records(cc.Out, seq, render.WithColors(cfg.colors(cc.Out)))
	if err != nil {
		return err
	}
	if cfg.Stats {
		fmt.Fprintln(cc.Out, stats)
	}
	if stats.Total > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
