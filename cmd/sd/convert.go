package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/edittools/strucdiff/encode"
	"github.com/edittools/strucdiff/format"
	"github.com/edittools/strucdiff/parse"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: convert takes at most one file, got %v", cli.ErrUsage, args)
	}
	arg := "-"
	if len(args) == 1 {
		arg = args[0]
	}
	d, err := readInput(cc, arg)
	if err != nil {
		return err
	}

	in := format.JSONFormat
	if arg != "-" {
		in = format.ForPath(arg)
	}
	if cfg.InFormat != nil {
		in = *cfg.InFormat
	}
	out := format.JSONFormat
	if cfg.OutFormat != nil {
		out = *cfg.OutFormat
	}

	node, err := parse.Parse(d, parse.WithFormat(in))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return encode.Encode(node, cc.Out,
		encode.EncodeFormat(out), encode.EncodeWire(cfg.WireOut))
}
