package bitlist

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange      = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIllegalState    = errors.New("illegal state")
	ErrNoSuchElement   = errors.New("no such element")
)

// IndexError reports an index outside [0, Bound) for the operation Op.
// It matches ErrOutOfRange with errors.Is.
type IndexError struct {
	Op    string
	Index int
	Bound int
}

func (err IndexError) Error() string {
	return fmt.Sprintf("%v: index out of range; expected: [0, %d), given: %d", err.Op, err.Bound, err.Index)
}

func (err IndexError) Unwrap() error {
	return ErrOutOfRange
}

func invalidBit(op string, b Bit) error {
	return fmt.Errorf("%w: %v: not a bit value: %v", ErrInvalidArgument, op, b)
}
