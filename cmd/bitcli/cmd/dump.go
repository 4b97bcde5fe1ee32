package cmd

import (
	"encoding/hex"
	"fmt"
	"io"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bits/bitlist"
	"github.com/spacemeshos/bits/bitstream"
	"github.com/spacemeshos/bits/config"
)

func (a *app) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [file]",
		Short: "Dump the input as a table of offsets, bits and hex",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			bits := bitlist.New()
			n, err := io.Copy(bitstream.NewListWriter(bits), in)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			layout := config.DeriveDumpLayout(*a.cfg, uint64(bits.Len()))
			a.logger.Debug("dumping input",
				zap.Int64("bytes", n),
				zap.Uint64("rows", layout.NumRows),
				zap.Uint64("lastRowBytes", layout.LastRowNumBytes),
				zap.Uint64("trailingBits", layout.TrailingBits),
			)
			return dump(cmd.OutOrStdout(), bits, layout)
		},
	}
}

func dump(w io.Writer, bits *bitlist.List, layout config.DumpLayout) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Offset", "Bits", "Hex"})
	table.SetAutoWrapText(false)

	lr := bitstream.NewListReader(bits)
	row := make([]byte, layout.RowNumBytes)
	var offset int
	for {
		n, err := lr.Read(row)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		rowBits := bitlist.New()
		if _, err := bitstream.NewListWriter(rowBits).Write(row[:n]); err != nil {
			return err
		}
		table.Append([]string{
			fmt.Sprintf("%08x", offset),
			formatBits(rowBits.String(), 8, 0),
			hex.EncodeToString(row[:n]),
		})
		offset += n
	}

	table.SetFooter([]string{
		"Total",
		fmt.Sprintf("%d bits", bits.Len()),
		bytefmt.ByteSize(uint64(offset)),
	})
	table.Render()
	return nil
}
