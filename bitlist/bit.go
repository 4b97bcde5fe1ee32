// Package bitlist provides List, a dynamically sized sequence of bits with
// random access and arbitrary-position insertion and removal, a
// bidirectional Iterator able to mutate the list it walks, and conversions
// between lists, fixed-width integers and binary text.
//
// Bits are ordered LSB first: index 0 of a list converted from an integer
// holds the integer's least-significant bit.
package bitlist

import "fmt"

// Bit is a single two-valued element. Only Zero and One are valid; any
// other value is rejected by mutators and never found by lookups.
type Bit uint8

const (
	Zero Bit = iota
	One
)

func FromBool(v bool) Bit {
	if v {
		return One
	}
	return Zero
}

func (b Bit) Bool() bool {
	return b == One
}

func (b Bit) Valid() bool {
	return b == Zero || b == One
}

// Char returns the binary digit of b, '0' or '1'.
func (b Bit) Char() byte {
	if b == One {
		return '1'
	}
	return '0'
}

func (b Bit) String() string {
	switch b {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return fmt.Sprintf("Bit(%d)", uint8(b))
	}
}
