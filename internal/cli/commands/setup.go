package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/shipit/internal/cli/prompt"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the interactive configuration again",
	Long: `Setup asks for each workflow toggle and rewrites the configuration
store. It also seeds the funny commit message pool when none exists yet.
The same flow runs automatically the first time shipit starts.`,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	forwardInterrupts()

	mgr, err := configManager()
	if err != nil {
		return err
	}
	return runFirstTimeSetup(mgr, prompt.New())
}
