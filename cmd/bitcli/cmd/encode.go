package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bits/bitlist"
	"github.com/spacemeshos/bits/bitstream"
)

func (a *app) encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [file]",
		Short: "Print the bits of the input as binary text",
		Long: `encode reads bytes from a file (or stdin) and prints them as binary text,
least-significant bit of every byte first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			bits, err := readBits(bitstream.NewReader(in, bitstream.WithLogger(a.logger)))
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			a.logger.Debug("encoded input", zap.Int("bits", bits.Len()))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatBits(bits.String(), a.cfg.GroupSize, a.cfg.LineWidth))
			return err
		},
	}
}

func readBits(br *bitstream.Reader) (*bitlist.List, error) {
	bits := bitlist.New()
	for {
		bit, err := br.ReadBit()
		if err == io.EOF {
			return bits, nil
		}
		if err != nil {
			return nil, err
		}
		if err := bits.Append(bit); err != nil {
			return nil, err
		}
	}
}
