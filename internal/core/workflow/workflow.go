// Package workflow implements the shipit decision engine: given a
// repository snapshot it either commits directly to the current feature
// branch or cuts a new feature branch, pushes it, opens a pull request
// and applies the configured post-actions.
//
// The orchestrator is deliberately free of process-termination side
// effects; every outcome is an ordinary return value mapped to an exit
// code by the command layer.
package workflow

import (
	"context"

	"github.com/aki/shipit/internal/cli/ui"
	"github.com/aki/shipit/internal/core/branch"
	"github.com/aki/shipit/internal/core/clipboard"
	"github.com/aki/shipit/internal/core/config"
	"github.com/aki/shipit/internal/core/forge"
	"github.com/aki/shipit/internal/core/git"
	"github.com/aki/shipit/internal/core/interaction"
	"github.com/aki/shipit/internal/core/logger"
	"github.com/aki/shipit/internal/core/message"
)

// Orchestrator sequences the external git and forge operations for one
// run. All collaborators are injected; tests substitute a recording
// runner and a scripted interactor.
type Orchestrator struct {
	cfg      config.Workflow
	state    git.State
	git      *git.Client
	forge    *forge.Client
	messages *message.Provider
	ask      interaction.Interactor
	clip     clipboard.Copier
	log      logger.Logger
}

// New creates an orchestrator over the captured repository state.
func New(
	cfg config.Workflow,
	state git.State,
	gitClient *git.Client,
	forgeClient *forge.Client,
	messages *message.Provider,
	ask interaction.Interactor,
	clip clipboard.Copier,
	log logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		state:    state,
		git:      gitClient,
		forge:    forgeClient,
		messages: messages,
		ask:      ask,
		clip:     clip,
		log:      log,
	}
}

// Run executes the workflow. A nil return covers both completed runs and
// voluntary no-ops (clean tree, declined prompts); errors are fatal and
// map to a non-zero exit code in the command layer.
func (o *Orchestrator) Run(ctx context.Context) error {
	if o.state.Clean {
		ui.Info("Nothing to commit, working tree clean")
		return nil
	}

	// The path is selected once from the startup snapshot and never
	// re-evaluated mid-run.
	if branch.IsDefault(o.state.Branch) {
		return o.featureBranch(ctx)
	}
	return o.directCommit(ctx)
}

// directCommit handles a dirty tree on a feature branch: stage, commit
// and push to the already-tracked upstream.
func (o *Orchestrator) directCommit(ctx context.Context) error {
	ok, err := o.ask.Confirm("wip?", true)
	if err != nil {
		return err
	}
	if !ok {
		o.log.Debug("wip declined, leaving the tree untouched")
		return nil
	}

	msg, err := o.messages.Choose(message.Direct, o.cfg.FunnyCommit)
	if err != nil {
		return err
	}

	if err := o.git.AddAll(ctx); err != nil {
		return err
	}
	if err := o.git.Commit(ctx, msg); err != nil {
		return err
	}
	if err := o.git.Push(ctx); err != nil {
		return err
	}

	ui.Success("Pushed %q to %s", msg, o.state.Branch)
	return nil
}

// featureBranch handles a dirty tree on a default branch: cut a branch,
// push it, optionally open a PR and apply the configured post-actions.
func (o *Orchestrator) featureBranch(ctx context.Context) error {
	base := o.state.Branch

	ok, err := o.ask.Confirm("Create a new branch off "+base+"?", true)
	if err != nil {
		return err
	}
	if !ok {
		o.log.Debug("branch creation declined, leaving the tree untouched")
		return nil
	}

	// All dynamic inputs are collected before the first mutation.
	name, err := o.ask.Input("Branch name", branch.DefaultName(), true)
	if err != nil {
		return err
	}
	name = branch.Sanitize(name)

	msg, err := o.messages.Choose(message.Feature, o.cfg.FunnyCommit)
	if err != nil {
		return err
	}

	createPR, err := o.ask.Confirm("Create a pull request?", o.cfg.CreatePR)
	if err != nil {
		return err
	}

	autoMerge := false
	if createPR {
		if autoMerge, err = o.ask.Confirm("Enable auto-merge?", o.cfg.AutoMerge); err != nil {
			return err
		}
	}

	backToBase, err := o.ask.Confirm("Switch back to "+base+" afterwards?", o.cfg.BackToDefault)
	if err != nil {
		return err
	}

	deleteBranch := false
	if backToBase {
		if deleteBranch, err = o.ask.Confirm("Delete "+name+" after switching back?", o.cfg.DeleteBranch); err != nil {
			return err
		}
	}

	if err := o.git.CheckoutNew(ctx, name); err != nil {
		return err
	}
	if err := o.git.AddAll(ctx); err != nil {
		return err
	}
	if err := o.git.Commit(ctx, msg); err != nil {
		return err
	}
	if err := o.git.PushUpstream(ctx, name); err != nil {
		return err
	}
	ui.Success("Pushed new branch %s", name)

	if createPR {
		pr, err := o.forge.CreatePR(ctx, base)
		if err != nil {
			// Fatal: no post-actions after a failed PR creation.
			return err
		}
		ui.Success("Created pull request %s", pr.URL)

		if err := o.clip.Copy(pr.URL); err != nil {
			o.log.Debug("clipboard copy failed", "error", err)
		}

		if autoMerge {
			if err := o.forge.EnableAutoMerge(ctx, pr.Number); err != nil {
				// Recovered locally: the PR exists, merging can be armed by hand.
				ui.Warning("Could not enable auto-merge: %v", err)
			}
		}
	}

	if backToBase {
		if err := o.git.Checkout(ctx, base); err != nil {
			return err
		}
		if deleteBranch {
			if err := o.git.DeleteBranch(ctx, name); err != nil {
				return err
			}
		}
	}

	return nil
}
