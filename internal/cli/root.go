package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardgen",
	Short: "Offline tournament card renderer",
	Long: `Cardgen renders tournament cards to print-ready PNGs without the server.
It takes a card record and tournament configuration as JSON files, resolves
assets from a local directory, and writes either the full-bleed card or the
trimmed preview.`,
}

func init() {
	RootCmd.AddCommand(renderCmd)
	RootCmd.AddCommand(snapshotCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
