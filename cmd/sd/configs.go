package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/edittools/strucdiff/format"
	"github.com/edittools/strucdiff/render"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='colored output'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// colors resolves the color table for w: -color forces it on, an
// explicit -color=false forces it off, and otherwise terminals get
// color.
func (cfg *MainConfig) colors(w io.Writer) *render.Colors {
	if cfg.Color {
		return render.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return render.NewColors()
	}
	return nil
}

type DiffConfig struct {
	*MainConfig
	Mode  string `cli:"name=m aliases=mode desc='comparison mode: full/f, ordered/o, exact/e'"`
	Stats bool   `cli:"name=stats desc='print a summary line after the records'"`

	Kind *format.Format

	Diff *cli.Command
}

type RowsConfig struct {
	*MainConfig
	Header    bool   `cli:"name=header desc='ignore the first row of each file'"`
	KeepEmpty bool   `cli:"name=keep-empty desc='keep all-blank rows'"`
	Where     string `cli:"name=where desc='row filter expression over cells and index'"`
	Delim     string `cli:"name=d aliases=delim desc='cell delimiter (default comma)'"`

	Rows *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type SQLConfig struct {
	*MainConfig
	Table  string `cli:"name=table desc='target table name'"`
	Batch  int    `cli:"name=batch desc='rows per INSERT statement'"`
	Header bool   `cli:"name=header desc='first row names the columns'"`
	Delim  string `cli:"name=d aliases=delim desc='cell delimiter (default comma)'"`

	SQL *cli.Command
}

type PadConfig struct {
	*MainConfig
	Width int    `cli:"name=w aliases=width desc='target width in runes'"`
	L     bool   `cli:"name=l desc='pad on the left (right-align)'"`
	R     bool   `cli:"name=r desc='pad on the right (left-align)'"`
	C     bool   `cli:"name=c desc='center'"`
	Fill  string `cli:"name=fill desc='fill character (default space)'"`

	Pad *cli.Command
}

type ServeConfig struct {
	*MainConfig
	Addr string `cli:"name=addr desc='TCP listen address' default=localhost:9130"`

	Serve *cli.Command
}
