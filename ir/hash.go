package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is shared so that equal nodes hash equal across calls
// within a process.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the node. Nodes for which
// Compare returns 0 hash to the same value.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Type))

	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		if n.Int64 != nil {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(*n.Int64))
			h.Write(b[:])
		} else if n.Float64 != nil {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(*n.Float64))
			h.Write(b[:])
		} else {
			h.WriteString(n.Number)
		}
	case StringType, TextType:
		h.WriteString(n.String)
	case ArrayType:
		var b [8]byte
		for _, v := range n.Values {
			// Write child hashes in order so [a b] != [b a].
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		var b [8]byte
		for i, field := range n.Fields {
			binary.LittleEndian.PutUint64(b[:], field.Hash())
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			h.Write(b[:])
		}
	case ElementType:
		h.WriteString(n.Tag)
		h.WriteByte(0)
		for _, a := range n.Attrs {
			h.WriteString(a.Name)
			h.WriteByte('=')
			h.WriteString(a.Value)
			h.WriteByte(0)
		}
		var b [8]byte
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
