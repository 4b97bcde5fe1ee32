package bitstream_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/spacemeshos/bits/bitlist"
	"github.com/spacemeshos/bits/bitstream"
)

const (
	Zero = bitlist.Zero
	One  = bitlist.One
)

var (
	NewWriter     = bitstream.NewWriter
	NewReader     = bitstream.NewReader
	NewListReader = bitstream.NewListReader
	NewListWriter = bitstream.NewListWriter
)

// readAll reads bits until io.EOF, regrouping every 8 of them into a byte.
func readAll(t *testing.T, br *bitstream.Reader) []byte {
	var out []byte
	group := bitlist.New()
	for {
		bit, err := br.ReadBit()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.NoError(t, group.Append(bit))
		if group.Len() == 8 {
			out = append(out, bitlist.ToUint8(group))
			group.Clear()
		}
	}
	require.Zero(t, group.Len(), "bits are only ever read in whole bytes")
	return out
}

func TestRoundTrip(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	bw := NewWriter(buf, bitstream.WithLogger(zaptest.NewLogger(t, zaptest.Level(zap.DebugLevel))))
	for _, b := range []byte("abcd") {
		for _, bit := range bitlist.FromUint8(b).Bits() {
			req.NoError(bw.WriteBit(bit))
		}
	}
	bw.AddPadding()
	req.NoError(bw.Flush())
	req.Equal([]byte{0x61, 0x62, 0x63, 0x64}, buf.Bytes())

	req.Equal([]byte("abcd"), readAll(t, NewReader(buf)))
}

func TestString(t *testing.T) {
	req := require.New(t)

	s := "a string"
	br := NewReader(strings.NewReader(s))
	buf := bytes.NewBuffer(nil)
	bw := NewWriter(buf)

	for {
		bit, err := br.ReadBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			req.Fail(err.Error())
		}
		err = bw.WriteBit(bit)
		req.NoError(err)
	}
	req.NoError(bw.Flush())

	req.Equal(s, buf.String())
}

func TestReader_LSBFirst(t *testing.T) {
	req := require.New(t)

	br := NewReader(bytes.NewReader([]byte{0x0F}))
	for i := 0; i < 8; i++ {
		bit, err := br.ReadBit()
		req.NoError(err)
		req.Equal(bitlist.FromBool(i < 4), bit, "bit %d", i)
	}
	_, err := br.ReadBit()
	req.Equal(io.EOF, err)
}

// countingReader counts calls to Read.
type countingReader struct {
	r     io.Reader
	calls int
}

func (cr *countingReader) Read(p []byte) (int, error) {
	cr.calls++
	return cr.r.Read(p)
}

func TestReader_OneByteAtATime(t *testing.T) {
	req := require.New(t)

	cr := &countingReader{r: strings.NewReader("xyz")}
	br := NewReader(cr)

	for i := 0; i < 8; i++ {
		_, err := br.ReadBit()
		req.NoError(err)
		req.Equal(1, cr.calls)
	}
	_, err := br.ReadBit()
	req.NoError(err)
	req.Equal(2, cr.calls)
}

func TestEOF_0(t *testing.T) {
	req := require.New(t)

	_, err := NewReader(bytes.NewReader(nil)).ReadBit()
	req.Equal(io.EOF, err)
	_, err = NewReader(bytes.NewReader(nil)).ReadByte()
	req.Equal(io.EOF, err)
	_, err = NewReader(bytes.NewReader([]byte{})).ReadBit()
	req.Equal(io.EOF, err)
	_, err = NewReader(bytes.NewReader([]byte{})).ReadByte()
	req.Equal(io.EOF, err)
}

func TestEOF_1(t *testing.T) {
	req := require.New(t)

	br := NewReader(strings.NewReader("abc"))

	b, err := br.ReadByte()
	req.NoError(err)
	req.Equal(byte('a'), b)
	b, err = br.ReadByte()
	req.NoError(err)
	req.Equal(byte('b'), b)
	b, err = br.ReadByte()
	req.NoError(err)
	req.Equal(byte('c'), b)

	b, err = br.ReadByte()
	req.Equal(io.EOF, err)
	req.Equal(byte(0), b)
}

func TestEOF_Latched(t *testing.T) {
	req := require.New(t)

	cr := &countingReader{r: bytes.NewReader(nil)}
	br := NewReader(cr)
	for i := 0; i < 3; i++ {
		_, err := br.ReadBit()
		req.Equal(io.EOF, err)
	}
	req.Equal(1, cr.calls, "source is not read again after io.EOF")
}

func TestEOF_MidByte(t *testing.T) {
	req := require.New(t)

	br := NewReader(bytes.NewReader([]byte{0xFF}))
	for i := 0; i < 3; i++ {
		_, err := br.ReadBit()
		req.NoError(err)
	}
	_, err := br.ReadByte()
	req.Equal(io.ErrUnexpectedEOF, err)
}

func TestReadByte_Unaligned(t *testing.T) {
	req := require.New(t)

	// 0xF0, 0x0F: skipping 4 bits leaves 0x0, 0xF as the next byte's nibbles.
	br := NewReader(bytes.NewReader([]byte{0xF0, 0x0F}))
	for i := 0; i < 4; i++ {
		bit, err := br.ReadBit()
		req.NoError(err)
		req.Equal(Zero, bit)
	}
	b, err := br.ReadByte()
	req.NoError(err)
	req.Equal(byte(0xFF), b)
}

type badReader struct{}

var ErrBadReader = errors.New("bad reader")

func (r *badReader) Read(p []byte) (n int, err error) {
	return 0, ErrBadReader
}

func TestBadReader(t *testing.T) {
	req := require.New(t)

	br := NewReader(&badReader{})
	_, err := br.ReadBit()
	req.Equal(ErrBadReader, err)
	_, err = br.ReadBit()
	req.Equal(ErrBadReader, err, "non-EOF errors are not latched")
}

func TestWriter_Unpadded(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	bw := NewWriter(buf)
	for _, bit := range []bitlist.Bit{One, Zero, One, One} {
		req.NoError(bw.WriteBit(bit))
	}
	req.NoError(bw.Flush())
	req.Zero(buf.Len())
	req.Equal(4, bw.Buffered())
}

func TestWriter_Padded(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	bw := NewWriter(buf)
	for _, bit := range []bitlist.Bit{One, Zero, One, One} {
		req.NoError(bw.WriteBit(bit))
	}
	bw.AddPadding()
	req.Equal(8, bw.Buffered())
	req.NoError(bw.Flush())
	req.Equal([]byte{0x0D}, buf.Bytes())
	req.Zero(bw.Buffered())
}

func TestWriter_PaddingEmpty(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	bw := NewWriter(buf)
	bw.AddPadding()
	req.Zero(bw.Buffered())
	req.NoError(bw.Flush())
	req.Zero(buf.Len())

	// A complete byte needs no padding.
	req.NoError(bw.WriteByte(0x80))
	bw.AddPadding()
	req.NoError(bw.Flush())
	req.Equal([]byte{0x80}, buf.Bytes())
}

func TestWriter_EmitsOnNextWrite(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	bw := NewWriter(buf)
	req.NoError(bw.WriteByte(0xAA))
	req.Zero(buf.Len(), "a complete byte is held until the next write or flush")

	req.NoError(bw.WriteBit(One))
	req.Equal([]byte{0xAA}, buf.Bytes())
	req.Equal(1, bw.Buffered())
}

func TestWriter_FlushesUnderlying(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	bufw := bufio.NewWriter(buf)
	bw := NewWriter(bufw)
	req.NoError(bw.WriteByte(0x42))
	req.NoError(bw.Flush())
	req.Equal([]byte{0x42}, buf.Bytes())
}

func TestWriter_InvalidBit(t *testing.T) {
	req := require.New(t)

	bw := NewWriter(bytes.NewBuffer(nil))
	req.ErrorIs(bw.WriteBit(bitlist.Bit(3)), bitlist.ErrInvalidArgument)
	req.Zero(bw.Buffered())
}

type badWriter struct{}

var ErrBadWriter = errors.New("bad writer")

func (w *badWriter) Write(p []byte) (n int, err error) {
	return 0, ErrBadWriter
}

type badFlusher struct {
	bytes.Buffer
}

func (f *badFlusher) Flush() error {
	return ErrBadWriter
}

func TestBadWriter_0(t *testing.T) {
	req := require.New(t)

	bw := NewWriter(&badWriter{})
	for i := 0; i < 8; i++ {
		err := bw.WriteBit(One)
		req.NoError(err)
	}
	err := bw.WriteBit(One)
	req.Equal(ErrBadWriter, err)
	req.Equal(8, bw.Buffered(), "the pending byte is kept on failure")

	err = bw.Flush()
	req.Equal(ErrBadWriter, err)
}

func TestBadWriter_1(t *testing.T) {
	req := require.New(t)

	bw := NewWriter(&badFlusher{})
	req.Equal(ErrBadWriter, bw.Flush())
}

func TestListReader(t *testing.T) {
	req := require.New(t)

	l := bitlist.New()
	lw := NewListWriter(l)
	n, err := lw.Write([]byte("ab"))
	req.NoError(err)
	req.Equal(2, n)
	req.Equal(16, l.Len())

	lr := NewListReader(l)
	data, err := io.ReadAll(lr)
	req.NoError(err)
	req.Equal([]byte("ab"), data)
	req.Equal(16, l.Len(), "reading does not consume the list")
	req.Zero(lr.Remaining())
}

func TestListReader_Boundary(t *testing.T) {
	tests := []struct {
		name  string
		nbits int
		want  int
	}{
		{"empty", 0, 0},
		{"partial only", 7, 0},
		{"exact byte", 8, 1},
		{"byte and partial", 9, 1},
		{"exact two bytes", 16, 2},
		{"two bytes and partial", 23, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)

			l := bitlist.New()
			for i := 0; i < tc.nbits; i++ {
				l.AppendOne()
			}
			lr := NewListReader(l)
			for i := 0; i < tc.want; i++ {
				b, err := lr.ReadByte()
				req.NoError(err)
				req.Equal(byte(0xFF), b)
			}
			_, err := lr.ReadByte()
			req.Equal(io.EOF, err)
			req.Equal(tc.nbits%8, lr.Remaining())
		})
	}
}

func TestListReader_Read(t *testing.T) {
	req := require.New(t)

	l, err := bitlist.FromText("1000000001000000110")
	req.NoError(err)
	lr := NewListReader(l)

	p := make([]byte, 4)
	n, err := lr.Read(p)
	req.NoError(err)
	req.Equal(2, n)
	req.Equal([]byte{0x01, 0x02}, p[:n])

	n, err = lr.Read(p)
	req.Equal(io.EOF, err)
	req.Zero(n)

	n, err = lr.Read(nil)
	req.NoError(err)
	req.Zero(n)
}

func TestListReader_SeesAppends(t *testing.T) {
	req := require.New(t)

	l := bitlist.New()
	lr := NewListReader(l)
	_, err := lr.ReadByte()
	req.Equal(io.EOF, err)

	req.NoError(NewListWriter(l).WriteByte(0x7E))
	b, err := lr.ReadByte()
	req.NoError(err)
	req.Equal(byte(0x7E), b)
}

func TestListWriter_Appends(t *testing.T) {
	req := require.New(t)

	l, err := bitlist.FromText("11")
	req.NoError(err)
	req.NoError(NewListWriter(l).WriteByte(0x01))
	req.Equal("1110000000", l.String())
}

func TestWriterToList(t *testing.T) {
	req := require.New(t)

	// Bit-granular writer over a list used as its byte sink.
	l := bitlist.New()
	bw := NewWriter(NewListWriter(l))
	for _, bit := range []bitlist.Bit{One, One, Zero} {
		req.NoError(bw.WriteBit(bit))
	}
	bw.AddPadding()
	req.NoError(bw.Flush())
	req.Equal("11000000", l.String())

	br := NewReader(NewListReader(l))
	b, err := br.ReadByte()
	req.NoError(err)
	req.Equal(byte(0x03), b)
	_, err = br.ReadBit()
	req.Equal(io.EOF, err)
}
