package bitstream

import (
	"io"

	"github.com/spacemeshos/bits/bitlist"
)

var (
	_ io.Reader     = (*ListReader)(nil)
	_ io.ByteReader = (*ListReader)(nil)
	_ io.Writer     = (*ListWriter)(nil)
	_ io.ByteWriter = (*ListWriter)(nil)
)

// ListReader reads bytes out of a bitlist.Sequence, 8 bits per byte, LSB
// first. The sequence is never modified. A trailing group of fewer than 8
// bits is never returned.
type ListReader struct {
	seq bitlist.Sequence
	off int
}

func NewListReader(seq bitlist.Sequence) *ListReader {
	return &ListReader{seq: seq}
}

// Remaining returns the number of unread bits.
func (r *ListReader) Remaining() int {
	return r.seq.Len() - r.off
}

// ReadByte decodes the next 8 bits. It returns io.EOF when fewer than 8 remain.
func (r *ListReader) ReadByte() (byte, error) {
	if r.Remaining() < 8 {
		return 0, io.EOF
	}
	group := bitlist.New()
	for i := r.off; i < r.off+8; i++ {
		bit, err := r.seq.Get(i)
		if err != nil {
			return 0, err
		}
		if err := group.Append(bit); err != nil {
			return 0, err
		}
	}
	r.off += 8
	return bitlist.ToUint8(group), nil
}

func (r *ListReader) Read(p []byte) (int, error) {
	var n int
	for n < len(p) {
		b, err := r.ReadByte()
		if err == io.EOF && n > 0 {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

// ListWriter appends bytes to a bitlist.Sequence, 8 bits per byte, LSB
// first. Writes are not buffered.
type ListWriter struct {
	seq bitlist.Sequence
}

func NewListWriter(seq bitlist.Sequence) *ListWriter {
	return &ListWriter{seq: seq}
}

func (w *ListWriter) WriteByte(b byte) error {
	bits := bitlist.FromUint8(b)
	for i := 0; i < bits.Len(); i++ {
		bit, err := bits.Get(i)
		if err != nil {
			return err
		}
		if err := w.seq.Append(bit); err != nil {
			return err
		}
	}
	return nil
}

func (w *ListWriter) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := w.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}
