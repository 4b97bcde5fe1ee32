package bitlist

import (
	"fmt"

	"github.com/spacemeshos/bits/internal/bitfield"
)

// Sequence is the mutable ordered-sequence contract over bits. List
// implements it; the stream adapters in package bitstream accept any
// Sequence.
type Sequence interface {
	Len() int
	Get(i int) (Bit, error)
	Set(i int, b Bit) (Bit, error)
	Append(b Bit) error
	Insert(i int, b Bit) error
	RemoveAt(i int) (Bit, error)
}

var _ Sequence = (*List)(nil)

// List is a sequence of bits backed by a dense bitmap.
//
// Structural edits (Insert, RemoveAt) shift the tail one position at a time
// and are O(n) regardless of the position. Storage positions at or beyond
// Len() are scratch space and are never read.
//
// A List is not safe for concurrent use.
type List struct {
	field *bitfield.Field
	size  int
}

// New returns an empty list.
func New() *List {
	return fromField(bitfield.New(), 0)
}

// Of returns a list holding bits in order.
func Of(bits ...Bit) (*List, error) {
	l := New()
	if err := l.AppendAll(bits...); err != nil {
		return nil, err
	}
	return l, nil
}

// fromField wraps a pre-populated field. The list takes ownership of field.
func fromField(field *bitfield.Field, size int) *List {
	return &List{field: field, size: size}
}

func (l *List) Len() int {
	return l.size
}

func (l *List) IsEmpty() bool {
	return l.size == 0
}

func (l *List) at(i int) Bit {
	return FromBool(l.field.Test(i))
}

func (l *List) put(i int, b Bit) {
	l.field.Put(i, b == One)
}

func checkIndex(op string, i, bound int) error {
	if i < 0 || i >= bound {
		return IndexError{Op: op, Index: i, Bound: bound}
	}
	return nil
}

// Get returns the bit at index i.
func (l *List) Get(i int) (Bit, error) {
	if err := checkIndex("get", i, l.size); err != nil {
		return Zero, err
	}
	return l.at(i), nil
}

// Set replaces the bit at index i and returns the previous one.
func (l *List) Set(i int, b Bit) (Bit, error) {
	if err := checkIndex("set", i, l.size); err != nil {
		return Zero, err
	}
	if !b.Valid() {
		return Zero, invalidBit("set", b)
	}
	prev := l.at(i)
	l.put(i, b)
	return prev, nil
}

func (l *List) Append(b Bit) error {
	if !b.Valid() {
		return invalidBit("append", b)
	}
	l.put(l.size, b)
	l.size++
	return nil
}

func (l *List) AppendZero() {
	l.put(l.size, Zero)
	l.size++
}

func (l *List) AppendOne() {
	l.put(l.size, One)
	l.size++
}

// AppendAll appends bits in order. Nothing is appended if any of them is invalid.
func (l *List) AppendAll(bits ...Bit) error {
	for _, b := range bits {
		if !b.Valid() {
			return invalidBit("append", b)
		}
	}
	for _, b := range bits {
		l.put(l.size, b)
		l.size++
	}
	return nil
}

// Insert places b at index i, shifting the bits at i and after one position
// to the right. i may equal Len(), which appends.
func (l *List) Insert(i int, b Bit) error {
	if err := checkIndex("insert", i, l.size+1); err != nil {
		return err
	}
	if err := l.Append(b); err != nil {
		return err
	}
	// Walk backward so every bit is read before its slot is overwritten.
	for j := l.size - 1; j > i; j-- {
		l.put(j, l.at(j-1))
	}
	l.put(i, b)
	return nil
}

// RemoveAt removes and returns the bit at index i, shifting the bits after
// it one position to the left.
func (l *List) RemoveAt(i int) (Bit, error) {
	if err := checkIndex("remove", i, l.size); err != nil {
		return Zero, err
	}
	removed := l.at(i)
	for j := i; j <= l.size-2; j++ {
		l.put(j, l.at(j+1))
	}
	l.size--
	return removed, nil
}

// RemoveLast removes and returns the last bit.
func (l *List) RemoveLast() (Bit, error) {
	if l.size == 0 {
		return Zero, IndexError{Op: "remove last", Index: -1, Bound: 0}
	}
	l.size--
	return l.at(l.size), nil
}

// Remove removes the first occurrence of b and reports whether there was one.
func (l *List) Remove(b Bit) bool {
	i := l.IndexOf(b)
	if i == -1 {
		return false
	}
	_, err := l.RemoveAt(i)
	return err == nil
}

// IndexOf returns the index of the first occurrence of b, or -1.
func (l *List) IndexOf(b Bit) int {
	if !b.Valid() {
		return -1
	}
	for i := 0; i < l.size; i++ {
		if l.at(i) == b {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of b, or -1.
func (l *List) LastIndexOf(b Bit) int {
	if !b.Valid() {
		return -1
	}
	for i := l.size - 1; i >= 0; i-- {
		if l.at(i) == b {
			return i
		}
	}
	return -1
}

func (l *List) Contains(b Bit) bool {
	return l.IndexOf(b) >= 0
}

// ContainsAll reports whether every one of bits occurs in the list. Each
// distinct value is searched for at most once; an invalid value can never
// be satisfied.
func (l *List) ContainsAll(bits ...Bit) bool {
	var zeroChecked, oneChecked bool
	for _, b := range bits {
		switch {
		case b == Zero && !zeroChecked:
			zeroChecked = true
		case b == One && !oneChecked:
			oneChecked = true
		case b.Valid():
			continue
		default:
			return false
		}
		if !l.Contains(b) {
			return false
		}
	}
	return true
}

// Clear empties the list and erases its storage.
func (l *List) Clear() {
	l.field.ClearAll()
	l.size = 0
}

// Slice returns a copy of the bits in [from, to).
func (l *List) Slice(from, to int) ([]Bit, error) {
	if from < 0 || to > l.size || from > to {
		return nil, fmt.Errorf("%w: slice [%d:%d] of length %d", ErrOutOfRange, from, to, l.size)
	}
	bits := make([]Bit, 0, to-from)
	for i := from; i < to; i++ {
		bits = append(bits, l.at(i))
	}
	return bits, nil
}

// Bits returns a copy of all the bits in order.
func (l *List) Bits() []Bit {
	bits, _ := l.Slice(0, l.size)
	return bits
}

// Equal reports whether other holds the same bits in the same order.
func (l *List) Equal(other Sequence) bool {
	if other == nil || other.Len() != l.size {
		return false
	}
	for i := 0; i < l.size; i++ {
		b, err := other.Get(i)
		if err != nil || b != l.at(i) {
			return false
		}
	}
	return true
}

func (l *List) Clone() *List {
	return fromField(l.field.Clone(), l.size)
}

// Iterator returns a cursor positioned before the bit at index pos.
func (l *List) Iterator(pos int) (*Iterator, error) {
	return NewIterator(l, pos)
}

// String returns the binary text form of the list, index 0 first.
func (l *List) String() string {
	return ToText(l)
}
