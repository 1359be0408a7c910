package ir

import (
	"testing"
)

func obj(kvs ...any) *Node {
	m := map[string]*Node{}
	for i := 0; i < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1].(*Node)
	}
	return FromMap(m)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Text < Array < Object < Element
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Text", FromString("a"), FromText("a"), -1},
		{"Text < Array", FromText("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), obj(), -1},
		{"Object < Element", obj(), FromElement("a", nil, nil), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number Comparison: Int < Float < String
		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Float < StringNum", FromFloat(1.0), &Node{Type: NumberType, Number: "1"}, -1},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"StringNum < StringNum", &Node{Type: NumberType, Number: "1"}, &Node{Type: NumberType, Number: "2"}, -1},

		// String Comparison
		{"String < String", FromString("a"), FromString("b"), -1},
		{"String == String", FromString("a"), FromString("a"), 0},

		// Array Comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		// Object Comparison
		{"Empty Object == Empty Object", obj(), obj(), 0},
		{"Short Object < Long Object",
			obj("a", FromInt(1)),
			obj("a", FromInt(1), "b", FromInt(2)),
			-1},
		{"Object Key Comparison",
			obj("a", FromInt(1)),
			obj("b", FromInt(1)),
			-1},
		{"Object Value Comparison",
			obj("a", FromInt(1)),
			obj("a", FromInt(2)),
			-1},

		// Element Comparison
		{"Element Tag Comparison",
			FromElement("circle", nil, nil),
			FromElement("rect", nil, nil),
			-1},
		{"Element Attr Name Comparison",
			FromElement("rect", []Attr{{Name: "fill", Value: "red"}}, nil),
			FromElement("rect", []Attr{{Name: "width", Value: "red"}}, nil),
			-1},
		{"Element Attr Value Comparison",
			FromElement("rect", []Attr{{Name: "fill", Value: "blue"}}, nil),
			FromElement("rect", []Attr{{Name: "fill", Value: "red"}}, nil),
			-1},
		{"Element Fewer Attrs First",
			FromElement("rect", nil, nil),
			FromElement("rect", []Attr{{Name: "fill", Value: "red"}}, nil),
			-1},
		{"Element Child Comparison",
			FromElement("g", nil, []*Node{FromText("a")}),
			FromElement("g", nil, []*Node{FromText("b")}),
			-1},
		{"Element == Element",
			FromElement("g", []Attr{{Name: "id", Value: "x"}}, []*Node{FromText("a")}),
			FromElement("g", []Attr{{Name: "id", Value: "x"}}, []*Node{FromText("a")}),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestCompareDistinguishesContent(t *testing.T) {
	// Compare must only return 0 for identical content, so nodes that
	// would collide under naive string keys stay distinct.
	tests := []struct {
		name string
		a, b *Node
	}{
		{"string vs number", FromString("1"), FromInt(1)},
		{"joined strings", FromSlice([]*Node{FromString("ab"), FromString("c")}),
			FromSlice([]*Node{FromString("a"), FromString("bc")})},
		{"nested vs flat", FromSlice([]*Node{FromSlice([]*Node{FromInt(1)})}),
			FromSlice([]*Node{FromInt(1)})},
		{"attr vs child text",
			FromElement("p", []Attr{{Name: "a", Value: "x"}}, nil),
			FromElement("p", nil, []*Node{FromText("a=x")})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got == 0 {
				t.Errorf("Compare() = 0 for distinct nodes")
			}
		})
	}
}
