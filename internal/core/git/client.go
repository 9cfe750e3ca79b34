package git

import (
	"context"
	"fmt"

	"github.com/aki/shipit/internal/core/runner"
)

// Client issues mutating git commands through the runner seam.
type Client struct {
	run runner.Runner
}

// NewClient creates a git client on top of run.
func NewClient(run runner.Runner) *Client {
	return &Client{run: run}
}

// git runs a git subcommand and folds a non-zero exit into the error.
// The workflow has no rollback; a failing command simply stops the run.
func (c *Client) git(ctx context.Context, args ...string) error {
	res, err := c.run.Run(ctx, "git", args...)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git %s failed: %s", args[0], res.Output())
	}
	return nil
}

// AddAll stages every change in the working tree.
func (c *Client) AddAll(ctx context.Context) error {
	return c.git(ctx, "add", ".")
}

// Commit records the staged changes with the given message.
func (c *Client) Commit(ctx context.Context, message string) error {
	return c.git(ctx, "commit", "-m", message)
}

// Push pushes the current branch to its already-tracked upstream.
func (c *Client) Push(ctx context.Context) error {
	return c.git(ctx, "push")
}

// PushUpstream pushes branch to origin and sets it as upstream.
func (c *Client) PushUpstream(ctx context.Context, branch string) error {
	return c.git(ctx, "push", "-u", "origin", branch)
}

// Checkout switches to an existing branch.
func (c *Client) Checkout(ctx context.Context, branch string) error {
	return c.git(ctx, "checkout", branch)
}

// CheckoutNew creates branch and switches to it. Collisions with an
// existing branch are left for git itself to reject.
func (c *Client) CheckoutNew(ctx context.Context, branch string) error {
	return c.git(ctx, "checkout", "-b", branch)
}

// DeleteBranch removes a local branch. The delete is non-forced, so git
// refuses to drop unmerged work.
func (c *Client) DeleteBranch(ctx context.Context, branch string) error {
	return c.git(ctx, "branch", "-d", branch)
}
