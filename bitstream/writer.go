package bitstream

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/spacemeshos/bits/bitlist"
)

type flusher interface {
	Flush() error
}

// Writer writes bits to an io.Writer, a byte at a time.
//
// A byte is sent to the underlying writer only once its 8 bits are
// buffered and another bit is written or Flush is called. A trailing partial
// byte is never sent on its own: call AddPadding before the final Flush to
// complete it with zeros, otherwise it is dropped.
type Writer struct {
	stream  io.Writer
	logger  *zap.Logger
	pending *bitlist.List
}

// NewWriter returns a new instance of Writer.
func NewWriter(w io.Writer, opts ...OptionFunc) *Writer {
	options := applyOpts(opts...)
	return &Writer{
		stream:  w,
		logger:  options.logger,
		pending: bitlist.New(),
	}
}

// emit sends the pending byte if it is complete.
func (bw *Writer) emit() error {
	if bw.pending.Len() != 8 {
		return nil
	}
	if err := writeByte(bw.stream, bitlist.ToUint8(bw.pending)); err != nil {
		return err
	}
	bw.pending.Clear()
	return nil
}

// WriteBit writes a single bit to the stream, LSB first.
func (bw *Writer) WriteBit(bit bitlist.Bit) error {
	if !bit.Valid() {
		return fmt.Errorf("%w: write bit: %v", bitlist.ErrInvalidArgument, bit)
	}
	if err := bw.emit(); err != nil {
		return err
	}
	return bw.pending.Append(bit)
}

// WriteByte writes the 8 bits of b, LSB first, regardless of the alignment.
func (bw *Writer) WriteByte(b byte) error {
	bits := bitlist.FromUint8(b)
	for i := 0; i < bits.Len(); i++ {
		bit, err := bits.Get(i)
		if err != nil {
			return err
		}
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}
	return nil
}

// Flush sends the pending byte if it is complete, then flushes the
// underlying writer if it supports flushing.
func (bw *Writer) Flush() error {
	if err := bw.emit(); err != nil {
		return err
	}
	if n := bw.pending.Len(); n > 0 {
		bw.logger.Debug("bitstream: partial byte left unflushed", zap.Int("bits", n))
	}
	if f, ok := bw.stream.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// AddPadding completes a partially buffered byte with Zero bits.
// It does nothing if no bits are buffered.
func (bw *Writer) AddPadding() {
	if bw.pending.IsEmpty() {
		return
	}
	for bw.pending.Len() < 8 {
		bw.pending.AppendZero()
	}
}

// Buffered returns the number of bits not yet sent to the underlying writer.
func (bw *Writer) Buffered() int {
	return bw.pending.Len()
}
