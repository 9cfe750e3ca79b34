package main

import (
	"os"

	"github.com/aki/shipit/internal/cli/commands"
	"github.com/aki/shipit/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}
