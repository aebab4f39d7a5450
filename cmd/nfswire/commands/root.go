// Package commands implements the CLI commands for the nfswire tool.
package commands

import (
	"github.com/marmos91/nfswire/internal/logger"
	"github.com/spf13/cobra"

	// Register the NFSv3 wire schemas.
	_ "github.com/marmos91/nfswire/internal/protocol/nfs/types"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "nfswire",
	Short: "NFSv3 XDR wire inspection tool",
	Long: `nfswire decodes and inspects XDR-encoded NFSv3 protocol structures.

Feed it a hex dump of a procedure's arguments or results (as captured from
the wire, after RPC framing is stripped) and it prints the decoded value.
It can also dump the registered wire schemas themselves.

Use "nfswire [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")
		logger.SetLevel(level)
		logger.SetFormat(format)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "INFO", "Log level (DEBUG|INFO|WARN|ERROR)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text|json)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(schemasCmd)
}

// PrintErr prints an error message to stderr.
func PrintErr(format string, args ...any) {
	rootCmd.PrintErrf(format+"\n", args...)
}
