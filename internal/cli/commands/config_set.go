package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aki/shipit/internal/cli/ui"
	"github.com/aki/shipit/internal/core/config"
)

var configSetCmd = &cobra.Command{
	Use:   "set <key> <true|false>",
	Short: "Change one workflow toggle and persist it",
	Example: `  # Stop creating pull requests by default
  shipit config set CREATE_PR false`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	var value bool
	switch raw {
	case "true":
		value = true
	case "false":
		value = false
	default:
		return fmt.Errorf("value must be true or false, got %q", raw)
	}

	mgr, err := configManager()
	if err != nil {
		return err
	}

	cfg, err := mgr.Load()
	if err != nil {
		return fmt.Errorf("no configuration found, run 'shipit setup' first")
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := mgr.Save(cfg); err != nil {
		return err
	}

	ui.Success("%s = %t", key, value)
	return nil
}

// configManager builds the manager for the standard store location.
func configManager() (*config.Manager, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.NewManager(path, newLogger()), nil
}
