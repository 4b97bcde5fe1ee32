package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bits/bitlist"
	"github.com/spacemeshos/bits/bitstream"
)

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Turn binary text back into bytes",
		Long: `decode reads binary text ('0' and '1', whitespace is ignored) from a file
(or stdin) and writes the bytes it encodes, least-significant bit first.
A trailing partial byte is padded with zeros unless --pad=false is given,
in which case it is dropped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			text, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			bits, err := bitlist.FromText(stripSpace(string(text)))
			if err != nil {
				return err
			}

			return a.writeBits(bufio.NewWriter(cmd.OutOrStdout()), bits)
		},
	}
}

func (a *app) writeBits(w io.Writer, bits *bitlist.List) error {
	bw := bitstream.NewWriter(w, bitstream.WithLogger(a.logger))

	it, err := bits.Iterator(0)
	if err != nil {
		return err
	}
	for it.HasNext() {
		bit, err := it.Next()
		if err != nil {
			return err
		}
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}

	if a.cfg.Pad {
		bw.AddPadding()
	} else if n := bw.Buffered() % 8; n > 0 {
		a.logger.Warn("dropping trailing partial byte", zap.Int("bits", n))
	}
	return bw.Flush()
}
