// Package forge drives pull-request operations through the hosting
// platform CLI (gh). Like the git operations, every invocation goes
// through the process runner seam.
package forge

import (
	"context"
	"fmt"
	"strings"

	"github.com/aki/shipit/internal/core/runner"
)

// PullRequest describes a created pull request. The number is the last
// path segment of the URL, the identifier gh's follow-up commands accept.
type PullRequest struct {
	URL    string
	Number string
}

// CreateError carries the captured output of a failed PR creation so the
// caller can surface it before terminating.
type CreateError struct {
	Output string
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("pull request creation failed: %s", e.Output)
}

// Client issues forge commands through the runner seam.
type Client struct {
	run runner.Runner
}

// NewClient creates a forge client on top of run.
func NewClient(run runner.Runner) *Client {
	return &Client{run: run}
}

// CreatePR opens a pull request for the current branch against base,
// filling title and body from the commits. A non-zero exit yields a
// CreateError carrying the command output.
func (c *Client) CreatePR(ctx context.Context, base string) (PullRequest, error) {
	res, err := c.run.Run(ctx, "gh", "pr", "create", "-f", "-B", base)
	if err != nil {
		return PullRequest{}, err
	}
	if !res.Ok() {
		return PullRequest{}, &CreateError{Output: res.Output()}
	}

	url := strings.TrimSpace(res.Stdout)
	return PullRequest{
		URL:    url,
		Number: prNumber(url),
	}, nil
}

// EnableAutoMerge arms squash auto-merge on the pull request. Failures
// here are recoverable; the caller downgrades them to a warning.
func (c *Client) EnableAutoMerge(ctx context.Context, number string) error {
	res, err := c.run.Run(ctx, "gh", "pr", "merge", "--auto", "--squash", number)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("failed to enable auto-merge: %s", res.Output())
	}
	return nil
}

// prNumber extracts the PR number as the final path segment of the URL.
func prNumber(url string) string {
	url = strings.TrimRight(url, "/")
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}
