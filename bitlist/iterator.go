package bitlist

import "fmt"

// Iterator is a bidirectional cursor over a Sequence. Its position lies
// between two bits: position p sits after bit p-1 and before bit p.
//
// Set and Remove act on the bit returned by the last call to Next or
// Previous, and are rejected with ErrIllegalState if there was no such call
// since the cursor was created or since the last Add or Remove.
//
// The cursor holds a plain reference to its sequence. Structural changes
// made to the sequence by anything other than this cursor leave it in an
// undefined position.
type Iterator struct {
	seq  Sequence
	pos  int
	last int
}

// NewIterator returns a cursor over seq positioned at pos, 0 <= pos <= seq.Len().
func NewIterator(seq Sequence, pos int) (*Iterator, error) {
	if err := checkIndex("iterator", pos, seq.Len()+1); err != nil {
		return nil, err
	}
	return &Iterator{seq: seq, pos: pos, last: -1}, nil
}

func (it *Iterator) HasNext() bool {
	return it.pos < it.seq.Len()
}

func (it *Iterator) HasPrevious() bool {
	return it.pos > 0
}

// NextIndex returns the index of the bit Next would return.
func (it *Iterator) NextIndex() int {
	return it.pos
}

// PreviousIndex returns the index of the bit Previous would return, -1 at the start.
func (it *Iterator) PreviousIndex() int {
	return it.pos - 1
}

func (it *Iterator) Next() (Bit, error) {
	if !it.HasNext() {
		return Zero, fmt.Errorf("%w: next at position %d of %d", ErrNoSuchElement, it.pos, it.seq.Len())
	}
	b, err := it.seq.Get(it.pos)
	if err != nil {
		return Zero, err
	}
	it.last = it.pos
	it.pos++
	return b, nil
}

func (it *Iterator) Previous() (Bit, error) {
	if !it.HasPrevious() {
		return Zero, fmt.Errorf("%w: previous at position 0", ErrNoSuchElement)
	}
	b, err := it.seq.Get(it.pos - 1)
	if err != nil {
		return Zero, err
	}
	it.pos--
	it.last = it.pos
	return b, nil
}

// Set replaces the last visited bit.
func (it *Iterator) Set(b Bit) error {
	if it.last < 0 {
		return fmt.Errorf("%w: set without a preceding next or previous", ErrIllegalState)
	}
	_, err := it.seq.Set(it.last, b)
	return err
}

// Remove removes the last visited bit.
func (it *Iterator) Remove() error {
	if it.last < 0 {
		return fmt.Errorf("%w: remove without a preceding next or previous", ErrIllegalState)
	}
	if _, err := it.seq.RemoveAt(it.last); err != nil {
		return err
	}
	it.pos = it.last
	it.last = -1
	return nil
}

// Add inserts b at the cursor position; a following Next is unaffected and
// a following Previous returns b.
func (it *Iterator) Add(b Bit) error {
	if err := it.seq.Insert(it.pos, b); err != nil {
		return err
	}
	it.pos++
	it.last = -1
	return nil
}
