package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/edittools/strucdiff/format"
	"github.com/edittools/strucdiff/ir"
	"github.com/edittools/strucdiff/rows"
)

func TestParseJSON(t *testing.T) {
	doc := `{"b": [1, 2.5, "x", null, true], "a": {"nested": "v"}}`
	y, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.ObjectType || len(y.Fields) != 2 {
		t.Fatalf("root = %s with %d fields", y.Type, len(y.Fields))
	}
	// Keys come out sorted.
	if y.Fields[0].String != "a" || y.Fields[1].String != "b" {
		t.Errorf("fields = %q, %q", y.Fields[0].String, y.Fields[1].String)
	}
	arr := ir.Get(y, "b")
	if len(arr.Values) != 5 {
		t.Fatalf("array len = %d", len(arr.Values))
	}
	if arr.Values[0].Int64 == nil || *arr.Values[0].Int64 != 1 {
		t.Errorf("array[0] not int 1")
	}
	if arr.Values[1].Float64 == nil || *arr.Values[1].Float64 != 2.5 {
		t.Errorf("array[1] not float 2.5")
	}
	if arr.Values[3].Type != ir.NullType {
		t.Errorf("array[3] = %s", arr.Values[3].Type)
	}
	if got := ir.Get(ir.Get(y, "a"), "nested").Path(); got != "$.a.nested" {
		t.Errorf("path = %q", got)
	}
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", `{"a": `},
		{"trailing", `{} {}`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Errorf("no error for %q", tt.doc)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	doc := `
name: alice
count: 3
ratio: 0.5
tags:
  - x
  - y
`
	y, err := Parse([]byte(doc), WithFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(y, "name"); got == nil || got.String != "alice" {
		t.Errorf("name = %v", got)
	}
	count := ir.Get(y, "count")
	if count == nil || count.Type != ir.NumberType || count.Int64 == nil || *count.Int64 != 3 {
		t.Errorf("count = %+v", count)
	}
	ratio := ir.Get(y, "ratio")
	if ratio == nil || ratio.Float64 == nil || *ratio.Float64 != 0.5 {
		t.Errorf("ratio = %+v", ratio)
	}
	if got := len(ir.Get(y, "tags").Values); got != 2 {
		t.Errorf("tags len = %d", got)
	}
}

func TestParseXML(t *testing.T) {
	doc := `<svg width="4">
  <rect fill="red"/>
  text &amp; more
</svg>`
	y, err := Parse([]byte(doc), WithFormat(format.XMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.ElementType || y.Tag != "svg" {
		t.Fatalf("root = %s %q", y.Type, y.Tag)
	}
	if v, ok := y.Attr("width"); !ok || v != "4" {
		t.Errorf("width attr = %q, %v", v, ok)
	}
	// Whitespace is kept at parse time; canonicalization drops it.
	if len(y.Values) != 3 {
		t.Fatalf("children = %d, want 3", len(y.Values))
	}
	if y.Values[0].Type != ir.TextType || y.Values[0].String != "\n  " {
		t.Errorf("child[0] = %s %q", y.Values[0].Type, y.Values[0].String)
	}
	el := y.Values[1]
	if el.Type != ir.ElementType || el.Tag != "rect" {
		t.Fatalf("child[1] = %s %q", el.Type, el.Tag)
	}
	if f, _ := el.Attr("fill"); f != "red" {
		t.Errorf("fill = %q", f)
	}
	if y.Values[2].String != "\n  text & more\n" {
		t.Errorf("child[2] = %q", y.Values[2].String)
	}
}

func TestParseXMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unclosed", `<a><b></a>`},
		{"two roots", `<a/><b/>`},
		{"no element", `just text`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc), WithFormat(format.XMLFormat)); err == nil {
				t.Errorf("no error for %q", tt.doc)
			}
		})
	}
}

func TestParseRejectsNonTree(t *testing.T) {
	for _, f := range []format.Format{format.CSVFormat, format.TextFormat} {
		_, err := Parse([]byte("x"), WithFormat(f))
		if !errors.Is(err, format.ErrBadFormat) {
			t.Errorf("%s: err = %v, want ErrBadFormat", f, err)
		}
	}
}

func TestRows(t *testing.T) {
	doc := "a,b\n\"x,1\",2\n"
	got, err := Rows([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := []rows.Row{{"a", "b"}, {"x,1", "2"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}

	got, err = Rows([]byte("a;b\nc;d\n"), WithComma(';'))
	if err != nil {
		t.Fatal(err)
	}
	want = []rows.Row{{"a", "b"}, {"c", "d"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows with comma (-want +got):\n%s", diff)
	}
}
