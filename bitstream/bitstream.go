// Package bitstream provides wrappers for io.Writer and io.Reader to allow
// bit-granularity access to the stream, following the LSB pattern, where
// least-significant bits are written/read first.
//
// It also provides ListReader and ListWriter, which expose a
// bitlist.Sequence as a byte stream, eight bits per byte.
package bitstream

import (
	"io"

	"go.uber.org/zap"
)

type option struct {
	logger *zap.Logger
}

func applyOpts(options ...OptionFunc) *option {
	opts := &option{
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		opt(opts)
	}
	return opts
}

type OptionFunc func(*option)

func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) {
		o.logger = logger
	}
}

// readByte reads a single byte from r, using io.ByteReader when available.
func readByte(r io.Reader) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	var p [1]byte
	if _, err := io.ReadFull(r, p[:]); err != nil {
		return 0, err
	}
	return p[0], nil
}

// writeByte writes a single byte to w, using io.ByteWriter when available.
func writeByte(w io.Writer, b byte) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte(b)
	}
	n, err := w.Write([]byte{b})
	if err != nil {
		return err
	}
	if n != 1 {
		return io.ErrShortWrite
	}
	return nil
}
