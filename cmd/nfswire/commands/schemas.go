package commands

import (
	"github.com/marmos91/nfswire/internal/protocol/xdr"
	"github.com/spf13/cobra"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List the registered wire schemas",
	Long: `List every registered NFSv3 wire type with its ordered field table.

The printed order is the wire layout: fields are encoded and decoded
exactly in this sequence.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range xdr.Registered() {
			switch s := c.(type) {
			case *xdr.Schema:
				cmd.Printf("%s (%s)\n", s.Name(), s.GoType())
				for _, f := range s.Fields() {
					printField(cmd, f)
				}
			case *xdr.UnionSchema:
				ok, fail := s.Arms()
				cmd.Printf("%s (%s) union, ok status %d\n", s.Name(), s.GoType(), s.OkStatus())
				cmd.Printf("  resok   -> %s\n", ok.Name())
				cmd.Printf("  resfail -> %s\n", fail.Name())
			}
			cmd.Println()
		}
	},
}

func printField(cmd *cobra.Command, f xdr.Field) {
	switch f.Kind {
	case xdr.KindStruct, xdr.KindOptional:
		cmd.Printf("  %-20s %s %s\n", f.Name, f.Kind, f.Elem.Name())
	case xdr.KindEnum:
		cmd.Printf("  %-20s %s %s\n", f.Name, f.Kind, f.Enum.Name())
	case xdr.KindOpaque, xdr.KindString:
		if f.MaxLen > 0 {
			cmd.Printf("  %-20s %s max %d\n", f.Name, f.Kind, f.MaxLen)
			return
		}
		cmd.Printf("  %-20s %s\n", f.Name, f.Kind)
	case xdr.KindFixedOpaque:
		cmd.Printf("  %-20s %s size %d\n", f.Name, f.Kind, f.Size)
	default:
		cmd.Printf("  %-20s %s\n", f.Name, f.Kind)
	}
}
