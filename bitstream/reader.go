package bitstream

import (
	"io"

	"go.uber.org/zap"

	"github.com/spacemeshos/bits/bitlist"
)

// Reader reads bits from an io.Reader, one byte of look-ahead at most.
type Reader struct {
	stream io.Reader
	logger *zap.Logger

	// pending holds the bits of the current byte; next indexes the bit to
	// return, 8 once the byte is consumed.
	pending *bitlist.List
	next    int
	eof     bool
}

// NewReader returns a new instance of Reader.
func NewReader(r io.Reader, opts ...OptionFunc) *Reader {
	options := applyOpts(opts...)
	return &Reader{
		stream: r,
		logger: options.logger,
		next:   8,
	}
}

func (br *Reader) fill() error {
	if br.eof {
		return io.EOF
	}
	if br.next < 8 {
		return nil
	}

	b, err := readByte(br.stream)
	if err == io.EOF {
		br.logger.Debug("bitstream: end of input")
		br.eof = true
		br.pending = nil
		return io.EOF
	}
	if err != nil {
		return err
	}

	br.pending = bitlist.FromUint8(b)
	br.next = 0
	return nil
}

// ReadBit reads the next single bit from the stream, LSB first.
// Once the underlying reader reports io.EOF, every later call returns io.EOF
// without reading from it again. Other errors are returned as is.
func (br *Reader) ReadBit() (bitlist.Bit, error) {
	if err := br.fill(); err != nil {
		return bitlist.Zero, err
	}
	bit, err := br.pending.Get(br.next)
	if err != nil {
		return bitlist.Zero, err
	}
	br.next++
	return bit, nil
}

// ReadByte reads the next 8 bits, regardless of the alignment.
// It returns io.ErrUnexpectedEOF if the stream ends mid-byte.
func (br *Reader) ReadByte() (byte, error) {
	group := bitlist.New()
	for group.Len() < 8 {
		bit, err := br.ReadBit()
		if err == io.EOF && group.Len() > 0 {
			return 0, io.ErrUnexpectedEOF
		}
		if err != nil {
			return 0, err
		}
		if err := group.Append(bit); err != nil {
			return 0, err
		}
	}
	return bitlist.ToUint8(group), nil
}
