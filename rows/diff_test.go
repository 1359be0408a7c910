package rows

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffMultiset(t *testing.T) {
	A := Row{"A"}
	B := Row{"B"}
	tests := []struct {
		name       string
		a, b       []Row
		wantFirst  []Row
		wantSecond []Row
	}{
		{
			name: "equal multisets",
			a:    []Row{A, B},
			b:    []Row{B, A},
		},
		{
			name:       "multiplicity",
			a:          []Row{A, A, B},
			b:          []Row{A, B, B},
			wantFirst:  []Row{A},
			wantSecond: []Row{B},
		},
		{
			name:       "duplicates counted",
			a:          []Row{A, A, A},
			b:          []Row{A},
			wantFirst:  []Row{A, A},
			wantSecond: nil,
		},
		{
			name:       "disjoint keeps input order",
			a:          []Row{{"x", "1"}, {"y", "2"}},
			b:          []Row{{"z", "3"}},
			wantFirst:  []Row{{"x", "1"}, {"y", "2"}},
			wantSecond: []Row{{"z", "3"}},
		},
		{
			name:       "cell boundaries matter",
			a:          []Row{{"ab", "c"}},
			b:          []Row{{"a", "bc"}},
			wantFirst:  []Row{{"ab", "c"}},
			wantSecond: []Row{{"a", "bc"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Diff(tt.a, tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.wantFirst, d.OnlyInFirst); diff != "" {
				t.Errorf("OnlyInFirst (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantSecond, d.OnlyInSecond); diff != "" {
				t.Errorf("OnlyInSecond (-want +got):\n%s", diff)
			}
			if got := d.Empty(); got != (len(tt.wantFirst) == 0 && len(tt.wantSecond) == 0) {
				t.Errorf("Empty() = %v", got)
			}
		})
	}
}

func TestDiffSymmetric(t *testing.T) {
	// Result order depends on scan order, so compare sorted copies.
	byKey := func(rs []Row) []Row {
		s := slices.Clone(rs)
		slices.SortFunc(s, func(x, y Row) int {
			return strings.Compare(x.Key(), y.Key())
		})
		return s
	}
	a := []Row{{"1"}, {"2"}, {"2"}}
	b := []Row{{"2"}, {"3"}}
	fwd, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	rev, err := Diff(b, a)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(byKey(fwd.OnlyInFirst), byKey(rev.OnlyInSecond)); diff != "" {
		t.Errorf("asymmetric detection:\n%s", diff)
	}
	if diff := cmp.Diff(byKey(fwd.OnlyInSecond), byKey(rev.OnlyInFirst)); diff != "" {
		t.Errorf("asymmetric detection:\n%s", diff)
	}
}

func TestDiffIgnoreHeader(t *testing.T) {
	a := []Row{{"name"}, {"alice"}}
	b := []Row{{"nom"}, {"alice"}}
	d, err := Diff(a, b, IgnoreHeader(true))
	if err != nil {
		t.Fatal(err)
	}
	if !d.Empty() {
		t.Errorf("headers compared despite IgnoreHeader: %+v", d)
	}

	d, err = Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.OnlyInFirst) != 1 || len(d.OnlyInSecond) != 1 {
		t.Errorf("headers not compared by default: %+v", d)
	}
}

func TestDiffEmptyRows(t *testing.T) {
	a := []Row{{"x"}, {"", "  "}, {}}
	b := []Row{{"x"}}
	d, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Empty() {
		t.Errorf("blank rows compared by default: %+v", d)
	}

	d, err = Diff(a, b, IgnoreEmptyRows(false))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.OnlyInFirst) != 2 {
		t.Errorf("blank rows dropped despite IgnoreEmptyRows(false): %+v", d)
	}
}

func TestDiffWhere(t *testing.T) {
	a := []Row{{"a", "keep"}, {"b", "drop"}}
	b := []Row{{"a", "keep"}}
	d, err := Diff(a, b, Where(`cells[1] == "keep"`))
	if err != nil {
		t.Fatal(err)
	}
	if !d.Empty() {
		t.Errorf("where filter not applied: %+v", d)
	}
}

func TestDiffWhereBadExpr(t *testing.T) {
	_, err := Diff([]Row{{"a"}}, nil, Where(`cells +`))
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
	if ce.Option != "where" {
		t.Errorf("option = %q", ce.Option)
	}
}

func TestRowKey(t *testing.T) {
	if Row(nil).Key() != "" {
		t.Errorf("empty row key = %q", Row(nil).Key())
	}
	if (Row{"ab", "c"}).Key() == (Row{"a", "bc"}).Key() {
		t.Errorf("keys collide across cell boundaries")
	}
	if (Row{"a;b"}).Key() == (Row{"a", "b"}).Key() {
		t.Errorf("keys collide on separator content")
	}
}
