package git

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aki/shipit/internal/core/runner"
)

// recordingRunner captures every issued command and answers from a script.
type recordingRunner struct {
	calls   []string
	results map[string]runner.Result
	err     error
}

func (r *recordingRunner) Run(ctx context.Context, name string, args ...string) (runner.Result, error) {
	call := name + " " + strings.Join(args, " ")
	r.calls = append(r.calls, call)
	if r.err != nil {
		return runner.Result{}, r.err
	}
	if res, ok := r.results[call]; ok {
		return res, nil
	}
	return runner.Result{}, nil
}

func TestClient_Commands(t *testing.T) {
	tests := []struct {
		name string
		op   func(*Client, context.Context) error
		want string
	}{
		{"add all", func(c *Client, ctx context.Context) error { return c.AddAll(ctx) }, "git add ."},
		{"commit", func(c *Client, ctx context.Context) error { return c.Commit(ctx, "wip") }, "git commit -m wip"},
		{"push", func(c *Client, ctx context.Context) error { return c.Push(ctx) }, "git push"},
		{"push upstream", func(c *Client, ctx context.Context) error { return c.PushUpstream(ctx, "fix-a") }, "git push -u origin fix-a"},
		{"checkout", func(c *Client, ctx context.Context) error { return c.Checkout(ctx, "main") }, "git checkout main"},
		{"checkout new", func(c *Client, ctx context.Context) error { return c.CheckoutNew(ctx, "fix-a") }, "git checkout -b fix-a"},
		{"delete branch", func(c *Client, ctx context.Context) error { return c.DeleteBranch(ctx, "fix-a") }, "git branch -d fix-a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingRunner{}
			c := NewClient(rec)
			require.NoError(t, tt.op(c, context.Background()))
			assert.Equal(t, []string{tt.want}, rec.calls)
		})
	}
}

func TestClient_Failures(t *testing.T) {
	t.Run("non-zero exit surfaces command output", func(t *testing.T) {
		rec := &recordingRunner{results: map[string]runner.Result{
			"git branch -d fix-a": {ExitCode: 1, Stderr: "error: the branch 'fix-a' is not fully merged\n"},
		}}
		c := NewClient(rec)
		err := c.DeleteBranch(context.Background(), "fix-a")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not fully merged")
	})

	t.Run("runner error propagates", func(t *testing.T) {
		rec := &recordingRunner{err: fmt.Errorf("exec: git: not found")}
		c := NewClient(rec)
		assert.Error(t, c.Push(context.Background()))
	})
}
