package bitlist

import (
	"fmt"
	"strings"

	"github.com/spacemeshos/bits/internal/bitfield"
)

// FromUint8 returns the 8 bits of v, LSB first.
func FromUint8(v uint8) *List {
	return fromField(bitfield.FromWords(uint64(v)), 8)
}

// FromUint32 returns the 32 bits of v, LSB first.
func FromUint32(v uint32) *List {
	return fromField(bitfield.FromWords(uint64(v)), 32)
}

// FromUint64 returns the 64 bits of v, LSB first.
func FromUint64(v uint64) *List {
	return fromField(bitfield.FromWords(v), 64)
}

// ToUint8 decodes an 8-bit sequence, LSB first. It panics if seq.Len() != 8.
func ToUint8(seq Sequence) uint8 {
	return uint8(word(seq, 8))
}

// ToUint32 decodes a 32-bit sequence, LSB first. It panics if seq.Len() != 32.
func ToUint32(seq Sequence) uint32 {
	return uint32(word(seq, 32))
}

// ToUint64 decodes a 64-bit sequence, LSB first. It panics if seq.Len() != 64.
func ToUint64(seq Sequence) uint64 {
	return word(seq, 64)
}

func word(seq Sequence, width int) uint64 {
	if seq.Len() != width {
		panic(fmt.Sprintf("bitlist: invalid sequence length; expected: %d, given: %d", width, seq.Len()))
	}

	var mask uint64 = 1<<uint(width) - 1
	if width == 64 {
		mask = ^uint64(0)
	}

	// A List already holds the value as its first storage word.
	if l, ok := seq.(*List); ok {
		words := l.field.Words()
		if len(words) == 0 {
			return 0
		}
		return words[0] & mask
	}

	var w uint64
	for i := 0; i < width; i++ {
		b, err := seq.Get(i)
		if err != nil {
			panic(fmt.Sprintf("bitlist: get %d of %d: %v", i, width, err))
		}
		if b == One {
			w |= 1 << uint(i)
		}
	}
	return w
}

// FromText parses a string of '0' and '1' characters, leftmost first.
func FromText(s string) (*List, error) {
	l := New()
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			l.AppendZero()
		case '1':
			l.AppendOne()
		default:
			return nil, fmt.Errorf("%w: non-binary character %q at offset %d", ErrInvalidArgument, s[i], i)
		}
	}
	return l, nil
}

// ToText renders seq as '0' and '1' characters, index 0 first.
func ToText(seq Sequence) string {
	var sb strings.Builder
	sb.Grow(seq.Len())
	for i := 0; i < seq.Len(); i++ {
		b, err := seq.Get(i)
		if err != nil {
			break
		}
		sb.WriteByte(b.Char())
	}
	return sb.String()
}
