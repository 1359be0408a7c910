package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, xml/x, yaml/y, csv/c, text/t",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, xml/x, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sd").
		WithSynopsis("sd [opts] command [opts]").
		WithDescription("sd compares and converts structured documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sdMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			RowsCommand(cfg),
			ConvertCommand(cfg),
			SQLCommand(cfg),
			PadCommand(cfg),
			ServeCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "k",
		Aliases:     []string{"kind"},
		Description: "document kind: json/j, xml/x, yaml/y, csv/c, text/t",
		Type:        cli.NamedFuncOpt(mainCfg.fmtFunc(&cfg.Kind), "(kind)"),
	})

	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-k kind] [-m mode] a b").
		WithDescription("diff two documents structurally").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func RowsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RowsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Rows, "rows").
		WithAliases("r").
		WithSynopsis("rows [-header] [-keep-empty] [-where expr] a.csv b.csv").
		WithDescription("compare two row sets as multisets, ignoring order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rows(cfg, cc, args)
		})
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "co").
		WithSynopsis("convert [-I fmt] [-O fmt] [file]").
		WithDescription("re-encode a document in another format").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func SQLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SQLConfig{MainConfig: mainCfg, Batch: 1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.SQL, "sql").
		WithSynopsis("sql -table <name> [-batch n] [-header] [file.csv]").
		WithDescription("generate INSERT statements from rows").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sql(cfg, cc, args)
		})
}

func PadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PadConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Pad, "pad").
		WithAliases("p").
		WithSynopsis("pad -w n [-l|-r|-c] [-fill ch] [file]").
		WithDescription("pad lines to a fixed width").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return padCmd(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg, Addr: "localhost:9130"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-addr <addr>]").
		WithDescription("run the JSON-RPC comparison service").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}
