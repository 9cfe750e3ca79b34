package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/shipit/internal/cli/ui"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the shipit version",
	Run: func(cmd *cobra.Command, args []string) {
		ui.OutputLine("shipit %s", Version)
	},
}
