package strucdiff

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/edittools/strucdiff/canon"
	"github.com/edittools/strucdiff/format"
	"github.com/edittools/strucdiff/rows"
)

func TestCompareTree(t *testing.T) {
	tests := []struct {
		name string
		f    format.Format
		opts []CompareOpt
		a, b string
		want []*Record
	}{
		{
			name: "json defaults to full mode",
			f:    format.JSONFormat,
			a:    `{"xs": [1, 2, 3]}`,
			b:    `{"xs": [3, 2, 1]}`,
			want: nil,
		},
		{
			name: "json ordered",
			f:    format.JSONFormat,
			opts: []CompareOpt{WithMode(canon.ModeOrdered)},
			a:    `[1, 2]`,
			b:    `[2, 1]`,
			want: []*Record{
				{Kind: ValueDiff, Path: "$[0]", Left: "1", Right: "2", Index: -1},
				{Kind: ValueDiff, Path: "$[1]", Left: "2", Right: "1", Index: -1},
			},
		},
		{
			name: "yaml",
			f:    format.YAMLFormat,
			a:    "a: 1\n",
			b:    "a: 2\n",
			want: []*Record{
				{Kind: ValueDiff, Path: "$.a", Left: "1", Right: "2", Index: -1},
			},
		},
		{
			name: "xml",
			f:    format.XMLFormat,
			a:    `<svg><rect width="4"/></svg>`,
			b:    `<svg><rect width="5"/></svg>`,
			want: []*Record{
				{
					Kind:  AttrDiff,
					Path:  "svg/rect",
					Left:  `width="4"`,
					Right: `width="5"`,
					Index: -1,
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Compare(tt.a, tt.b, tt.f, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, s.Records()); diff != "" {
				t.Errorf("records differ (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompareExactMode(t *testing.T) {
	a, b := `{"a": 1}`, `{"a":1}`

	s, err := Compare(a, b, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if recs := s.Records(); len(recs) != 0 {
		t.Errorf("full mode got %d records, want none", len(recs))
	}

	s, err = Compare(a, b, format.JSONFormat, WithMode(canon.ModeExact))
	if err != nil {
		t.Fatal(err)
	}
	want := []*Record{
		{Kind: LineDiff, Left: a, Right: b, Index: 0},
	}
	if diff := cmp.Diff(want, s.Records()); diff != "" {
		t.Errorf("exact mode records differ (-want +got):\n%s", diff)
	}
}

func TestCompareText(t *testing.T) {
	s, err := Compare("a\nb", "a\nc", format.TextFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := []*Record{
		{Kind: LineDiff, Left: "b", Right: "c", Index: 1},
	}
	if diff := cmp.Diff(want, s.Records()); diff != "" {
		t.Errorf("records differ (-want +got):\n%s", diff)
	}
}

func TestCompareParseError(t *testing.T) {
	tests := []struct {
		name string
		f    format.Format
		a, b string
		side Side
	}{
		{name: "bad json first", f: format.JSONFormat, a: `{"a":`, b: `{}`, side: SideA},
		{name: "bad json second", f: format.JSONFormat, a: `{}`, b: `[1,`, side: SideB},
		{name: "bad xml", f: format.XMLFormat, a: `<a></a>`, b: `<a>`, side: SideB},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compare(tt.a, tt.b, tt.f)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("got %v, want a *ParseError", err)
			}
			if perr.Side != tt.side {
				t.Errorf("got side %q, want %q", perr.Side, tt.side)
			}
		})
	}
}

func TestCompareCSV(t *testing.T) {
	a := "A\nA\nB\n"
	b := "A\nB\nB\n"
	s, err := Compare(a, b, format.CSVFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := []*Record{
		{Kind: RowOnly, Side: SideA, Left: "A", Index: -1},
		{Kind: RowOnly, Side: SideB, Right: "B", Index: -1},
	}
	if diff := cmp.Diff(want, s.Records()); diff != "" {
		t.Errorf("records differ (-want +got):\n%s", diff)
	}
}

func TestCompareCSVOptions(t *testing.T) {
	a := "name,qty\nwidget,1\n"
	b := "name,qty\nwidget,2\n"

	s, err := Compare(a, b, format.CSVFormat, IgnoreHeader(true))
	if err != nil {
		t.Fatal(err)
	}
	want := []*Record{
		{Kind: RowOnly, Side: SideA, Left: "widget,1", Index: -1},
		{Kind: RowOnly, Side: SideB, Right: "widget,2", Index: -1},
	}
	if diff := cmp.Diff(want, s.Records()); diff != "" {
		t.Errorf("records differ (-want +got):\n%s", diff)
	}

	// The filter drops both differing rows, leaving equal multisets.
	s, err = Compare(a, b, format.CSVFormat, IgnoreHeader(true), Where(`cells[0] != "widget"`))
	if err != nil {
		t.Fatal(err)
	}
	if recs := s.Records(); len(recs) != 0 {
		t.Errorf("filtered compare got %d records, want none", len(recs))
	}
}

func TestCompareCSVBadWhere(t *testing.T) {
	_, err := Compare("a\n", "a\n", format.CSVFormat, Where("cells["))
	var cerr *rows.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want a *rows.ConfigError", err)
	}
	if cerr.Option != "where" {
		t.Errorf("got option %q, want %q", cerr.Option, "where")
	}
}

func TestCompareSemicolonCSV(t *testing.T) {
	a := "x;y\n1;2\n"
	b := "x;y\n1;3\n"
	s, err := Compare(a, b, format.CSVFormat, WithComma(';'))
	if err != nil {
		t.Fatal(err)
	}
	want := []*Record{
		{Kind: RowOnly, Side: SideA, Left: "1,2", Index: -1},
		{Kind: RowOnly, Side: SideB, Right: "1,3", Index: -1},
	}
	if diff := cmp.Diff(want, s.Records()); diff != "" {
		t.Errorf("records differ (-want +got):\n%s", diff)
	}
}
