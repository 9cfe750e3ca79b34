package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aki/shipit/internal/cli/ui"
)

var aliasCmd = &cobra.Command{
	Use:   "alias [name]",
	Short: "Install a shell alias for shipit",
	Long: `Alias appends an alias line to your shell rc file so the workflow is
one keystroke away. The alias name defaults to "sip".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAlias,
}

func runAlias(cmd *cobra.Command, args []string) error {
	name := "sip"
	if len(args) == 1 {
		name = args[0]
	}

	rcPath, err := shellRCPath()
	if err != nil {
		return err
	}

	line := fmt.Sprintf("alias %s='shipit'", name)

	existing, err := os.ReadFile(rcPath)
	if err == nil && strings.Contains(string(existing), line) {
		ui.Info("Alias %s already installed in %s", name, rcPath)
		return nil
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", rcPath, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString("\n" + line + "\n"); err != nil {
		return fmt.Errorf("failed to write alias: %w", err)
	}

	ui.Success("Added %q to %s", line, rcPath)
	ui.Info("Restart your shell or source the file to pick it up")
	return nil
}

// shellRCPath picks the rc file matching $SHELL, defaulting to .bashrc.
func shellRCPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	rc := ".bashrc"
	if strings.HasSuffix(os.Getenv("SHELL"), "zsh") {
		rc = ".zshrc"
	}
	return filepath.Join(home, rc), nil
}
