package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// openInput returns the file named by args[0], or stdin when there is none
// or it is "-".
func openInput(cmd *cobra.Command, args []string) (io.Reader, func() error, error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() error { return nil }, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// formatBits splits binary text into space-separated groups of groupSize
// bits, lineWidth groups per line.
func formatBits(text string, groupSize, lineWidth uint) string {
	if groupSize == 0 || text == "" {
		return text
	}

	var sb strings.Builder
	var groups uint
	for len(text) > 0 {
		n := int(groupSize)
		if n > len(text) {
			n = len(text)
		}
		if groups > 0 {
			if lineWidth > 0 && groups%lineWidth == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(text[:n])
		text = text[n:]
		groups++
	}
	return sb.String()
}

// stripSpace removes all whitespace from s.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
