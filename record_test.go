package strucdiff

import "testing"

func TestRecordString(t *testing.T) {
	tests := []struct {
		name string
		rec  *Record
		want string
	}{
		{
			name: "type diff",
			rec:  &Record{Kind: TypeDiff, Path: "$.a", Left: "1", Right: "array[1]", Index: -1},
			want: "$.a: type differs: 1 != array[1]",
		},
		{
			name: "value diff",
			rec:  &Record{Kind: ValueDiff, Path: "$.a", Left: "1", Right: "2", Index: -1},
			want: "$.a: 1 != 2",
		},
		{
			name: "key only",
			rec:  &Record{Kind: KeyOnly, Path: "$.b", Side: SideB, Index: -1},
			want: "$.b: only in second",
		},
		{
			name: "attr diff",
			rec:  &Record{Kind: AttrDiff, Path: "svg/rect", Left: `width="4"`, Right: `width="5"`, Index: -1},
			want: `svg/rect: attributes differ: width="4" != width="5"`,
		},
		{
			name: "extra item",
			rec:  &Record{Kind: ExtraItem, Path: "$[2]", Side: SideB, Right: "3", Index: 2},
			want: "$[2]: extra item in second: 3",
		},
		{
			name: "extra line",
			rec:  &Record{Kind: ExtraLine, Side: SideA, Left: "tail", Index: 4},
			want: `line 5: only in first: "tail"`,
		},
		{
			name: "row only",
			rec:  &Record{Kind: RowOnly, Side: SideA, Left: "widget,1", Index: -1},
			want: "row only in first: widget,1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
