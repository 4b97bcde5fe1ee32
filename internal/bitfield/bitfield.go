// Package bitfield is the dense storage backing bitlist.List. Positions are
// addressed individually; exporting the field yields little-endian words.
package bitfield

import (
	"github.com/bits-and-blooms/bitset"
)

// Field is a growable bitmap. Its zero value is not usable; use New.
type Field struct {
	set *bitset.BitSet
}

func New() *Field {
	return &Field{set: bitset.New(0)}
}

// FromWords returns a field whose position i holds bit i%64 of words[i/64].
func FromWords(words ...uint64) *Field {
	buf := make([]uint64, len(words))
	copy(buf, words)
	return &Field{set: bitset.From(buf)}
}

// Test reports whether position i is set. Positions never written read as unset.
func (f *Field) Test(i int) bool {
	return f.set.Test(uint(i))
}

// Put sets position i when v is true and clears it otherwise, growing the field as needed.
func (f *Field) Put(i int, v bool) {
	if v {
		f.set.Set(uint(i))
		return
	}
	f.set.Clear(uint(i))
}

func (f *Field) ClearAll() {
	f.set.ClearAll()
}

// Words exports the field as little-endian 64-bit words. The result may be
// empty when nothing was ever set.
func (f *Field) Words() []uint64 {
	return f.set.Bytes()
}

func (f *Field) Clone() *Field {
	return &Field{set: f.set.Clone()}
}
