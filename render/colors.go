package render

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/edittools/strucdiff"
)

// Colorable keys the color table: records color by what they report
// and, for one-sided records, by which side has the surplus.
type Colorable struct {
	Kind strucdiff.RecordKind
	Side strucdiff.Side
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string

	// Del and Ins mark changed spans inside a line pair.
	Del func(string, ...any) string
	Ins func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
		Del:     color.RedString,
		Ins:     color.GreenString,
	}
	for _, k := range strucdiff.Kinds() {
		able := Colorable{Kind: k, Side: strucdiff.SideA}
		colors.Map[able] = color.RedString
		able.Side = strucdiff.SideB
		colors.Map[able] = color.GreenString
	}
	able := Colorable{}

	able.Kind = strucdiff.TypeDiff
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able.Kind = strucdiff.ValueDiff
	colors.Map[able] = color.BlueString

	able.Kind = strucdiff.AttrDiff
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	able.Kind = strucdiff.LineDiff
	colors.Map[able] = color.CyanString

	for k, f := range colors.Map {
		colors.Map[k] = pctSafe(f)
	}
	colors.Del = pctSafe(colors.Del)
	colors.Ins = pctSafe(colors.Ins)
	return colors
}

// pctSafe keeps sprintf-style color funcs from interpreting verbs in
// record content.
func pctSafe(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.Replace(v, "%", "%%", -1))
	}
}

func colorDefault(v string, _ ...any) string { return v }

// AutoColors returns a color table when w is a terminal, nil
// otherwise.
func AutoColors(w io.Writer) *Colors {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return nil
}

func (c *Colors) Get(k strucdiff.RecordKind, s strucdiff.Side) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Side: s}]
	if f == nil {
		return c.Default
	}
	return f
}
