package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marmos91/nfswire/internal/protocol/xdr"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <type> [hex]",
	Short: "Decode an XDR-encoded NFSv3 structure",
	Long: `Decode XDR bytes as a registered NFSv3 wire type and print the result.

The input is a hex string, given as an argument or piped on stdin.
Whitespace in the hex input is ignored, so "tcpdump -x" style dumps can be
pasted directly. The type name is the RFC 1813 name as listed by
"nfswire schemas", e.g. fattr3 or LOOKUP3res.`,
	Example: `  # Decode a device number pair
  nfswire decode specdata3 "00 00 00 01 00 00 00 02"

  # Decode a captured LOOKUP reply body from stdin
  xxd -p capture.bin | nfswire decode LOOKUP3res`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().Bool("strict-padding", false, "Reject non-zero padding bytes")
	decodeCmd.Flags().Uint32("max-len", 0, "Maximum variable-length item size in bytes (default 1 MiB)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	typeName := args[0]

	var hexInput string
	if len(args) > 1 {
		hexInput = args[1]
	} else {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		hexInput = string(raw)
	}

	data, err := hex.DecodeString(stripWhitespace(hexInput))
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}

	var opts []xdr.Option
	if strict, _ := cmd.Flags().GetBool("strict-padding"); strict {
		opts = append(opts, xdr.WithStrictPadding())
	}
	if maxLen, _ := cmd.Flags().GetUint32("max-len"); maxLen > 0 {
		opts = append(opts, xdr.WithMaxVarLen(maxLen))
	}

	v, err := xdr.UnmarshalByName(typeName, data, opts...)
	if err != nil {
		return fmt.Errorf("decode %s: %w", typeName, err)
	}

	cmd.Printf("%s (%d bytes)\n%+v\n", typeName, len(data), v)
	return nil
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
