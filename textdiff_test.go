package strucdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTextDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want []*Record
	}{
		{
			name: "equal",
			a:    "one\ntwo\n",
			b:    "one\ntwo\n",
			want: nil,
		},
		{
			name: "changed line",
			a:    "one\ntwo\nthree",
			b:    "one\n2\nthree",
			want: []*Record{
				{Kind: LineDiff, Left: "two", Right: "2", Index: 1},
			},
		},
		{
			name: "extra lines in second",
			a:    "one",
			b:    "one\ntwo\nthree",
			want: []*Record{
				{Kind: ExtraLine, Side: SideB, Right: "two", Index: 1},
				{Kind: ExtraLine, Side: SideB, Right: "three", Index: 2},
			},
		},
		{
			name: "extra line in first",
			a:    "one\ntwo",
			b:    "one",
			want: []*Record{
				{Kind: ExtraLine, Side: SideA, Left: "two", Index: 1},
			},
		},
		{
			name: "trailing newline matters",
			a:    "one\n",
			b:    "one",
			want: []*Record{
				{Kind: ExtraLine, Side: SideA, Left: "", Index: 1},
			},
		},
		{
			name: "whitespace matters",
			a:    "a b",
			b:    "a  b",
			want: []*Record{
				{Kind: LineDiff, Left: "a b", Right: "a  b", Index: 0},
			},
		},
		{
			name: "shifted lines compare by position",
			a:    "one\ntwo",
			b:    "zero\none\ntwo",
			want: []*Record{
				{Kind: LineDiff, Left: "one", Right: "zero", Index: 0},
				{Kind: LineDiff, Left: "two", Right: "one", Index: 1},
				{Kind: ExtraLine, Side: SideB, Right: "two", Index: 2},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TextDiff(tt.a, tt.b).Records()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("records differ (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTextDiffLineNumbers(t *testing.T) {
	recs := TextDiff("a\nb", "a\nc").Records()
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if got, want := recs[0].String(), `line 2: "b" != "c"`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
