package config

import (
	"fmt"

	"github.com/aki/shipit/internal/core/interaction"
	"github.com/aki/shipit/internal/core/runner"
)

// RequiredTools are the external binaries shipit drives. First-run setup
// refuses to configure a machine that cannot run them.
var RequiredTools = []string{"git", "gh"}

// questions maps each toggle to its setup prompt, in persisted key order.
var questions = map[string]string{
	KeyCreatePR:      "Create pull requests for new branches?",
	KeyFunnyCommit:   "Use funny commit messages for wip commits?",
	KeyAutoMerge:     "Enable auto-merge on created pull requests?",
	KeyBackToDefault: "Switch back to the base branch afterwards?",
	KeyDeleteBranch:  "Delete the feature branch after switching back?",
}

// Setup runs the interactive first-run configuration: it preflights the
// required external tools, prompts for each toggle and persists the result.
// It does not run a workflow; the caller exits successfully afterwards.
func (m *Manager) Setup(ask interaction.Interactor) (Workflow, error) {
	if err := runner.Preflight(RequiredTools...); err != nil {
		return Workflow{}, err
	}

	cfg := Default()
	for _, key := range Keys {
		def, _ := cfg.Get(key)
		answer, err := ask.Confirm(questions[key], def)
		if err != nil {
			return Workflow{}, fmt.Errorf("setup aborted: %w", err)
		}
		_ = cfg.Set(key, answer)
	}

	if err := m.Save(cfg); err != nil {
		return Workflow{}, err
	}

	return cfg, nil
}
