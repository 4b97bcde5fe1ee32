package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/bits/bitlist"
)

func (a *app) intCmd() *cobra.Command {
	var (
		width   uint
		reverse bool
	)

	intCmd := &cobra.Command{
		Use:   "int VALUE",
		Short: "Convert an unsigned integer to its bits, or back",
		Long: `int prints the bits of an unsigned integer of the given width, least-significant
bit first. With --reverse, VALUE is binary text of exactly --width bits and the
integer it encodes is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width != 8 && width != 32 && width != 64 {
				return fmt.Errorf("invalid `width`; expected: 8, 32 or 64, given: %d", width)
			}

			if reverse {
				v, err := textToUint(stripSpace(args[0]), width)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
				return err
			}

			v, err := strconv.ParseUint(args[0], 0, int(width))
			if err != nil {
				return fmt.Errorf("invalid value: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatBits(uintToList(v, width).String(), a.cfg.GroupSize, a.cfg.LineWidth))
			return err
		},
	}

	intCmd.Flags().UintVar(&width, "width", 64, "integer width in bits (8, 32 or 64)")
	intCmd.Flags().BoolVar(&reverse, "reverse", false, "parse binary text and print the integer")
	return intCmd
}

func uintToList(v uint64, width uint) *bitlist.List {
	switch width {
	case 8:
		return bitlist.FromUint8(uint8(v))
	case 32:
		return bitlist.FromUint32(uint32(v))
	default:
		return bitlist.FromUint64(v)
	}
}

func textToUint(text string, width uint) (uint64, error) {
	bits, err := bitlist.FromText(text)
	if err != nil {
		return 0, err
	}
	if bits.Len() != int(width) {
		return 0, fmt.Errorf("invalid bit count; expected: %d, given: %d", width, bits.Len())
	}

	switch width {
	case 8:
		return uint64(bitlist.ToUint8(bits)), nil
	case 32:
		return uint64(bitlist.ToUint32(bits)), nil
	default:
		return bitlist.ToUint64(bits), nil
	}
}
