package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aki/shipit/internal/cli/ui"
	"github.com/aki/shipit/internal/core/config"
)

var showFormat string

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current workflow toggles",
	Example: `  # Show toggles as a table
  shipit config show

  # Show toggles in YAML format for scripting
  shipit config show --format yaml`,
	RunE: runConfigShow,
}

func init() {
	configShowCmd.Flags().StringVar(&showFormat, "format", "pretty", "Output format (pretty, yaml)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	mgr, err := configManager()
	if err != nil {
		return err
	}

	cfg, err := mgr.Load()
	if err != nil {
		return fmt.Errorf("no configuration found, run 'shipit setup' first")
	}

	switch showFormat {
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal configuration: %w", err)
		}
		ui.OutputLine("%s", string(data))
		return nil
	case "pretty":
		tbl := ui.NewTable("KEY", "VALUE")
		for _, key := range config.Keys {
			value, _ := cfg.Get(key)
			tbl.AddRow(key, fmt.Sprintf("%t", value))
		}
		tbl.Print()
		ui.OutputLine("")
		ui.OutputLine("%s", ui.DimStyle.Render("store: "+mgr.Path()))
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", showFormat)
	}
}
