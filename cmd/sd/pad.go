package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/scott-cotton/cli"

	"github.com/edittools/strucdiff/pad"
)

func padCmd(cfg *PadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pad.Parse(cc, args)
	if err != nil {
		cfg.Pad.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: pad takes at most one file, got %v", cli.ErrUsage, args)
	}
	if cfg.Width <= 0 {
		return fmt.Errorf("%w: pad requires -w with a positive width", cli.ErrUsage)
	}
	if count(cfg.L, cfg.R, cfg.C) > 1 {
		return fmt.Errorf("%w: must specify at most one of -l -r -c", cli.ErrUsage)
	}
	fill := ' '
	if cfg.Fill != "" {
		if utf8.RuneCountInString(cfg.Fill) != 1 {
			return fmt.Errorf("%w: fill must be a single character, got %q", cli.ErrUsage, cfg.Fill)
		}
		fill, _ = utf8.DecodeRuneInString(cfg.Fill)
	}
	padFn := pad.Right
	switch {
	case cfg.L:
		padFn = pad.Left
	case cfg.C:
		padFn = pad.Center
	}

	arg := "-"
	if len(args) == 1 {
		arg = args[0]
	}
	d, err := readInput(cc, arg)
	if err != nil {
		return err
	}
	lines := strings.Split(string(d), "\n")
	for i, ln := range lines {
		// A trailing newline leaves an empty final element; padding
		// it would invent a line.
		if i == len(lines)-1 && ln == "" {
			continue
		}
		lines[i] = padFn(ln, cfg.Width, fill)
	}
	_, err = fmt.Fprint(cc.Out, strings.Join(lines, "\n"))
	return err
}
