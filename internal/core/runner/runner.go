// Package runner provides process execution for shipit.
// Every external tool invocation (git, gh) goes through the Runner
// interface, which is the single seam substituted in tests.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result holds the outcome of an executed command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Ok reports whether the command exited successfully.
func (r Result) Ok() bool {
	return r.ExitCode == 0
}

// Output returns combined stdout and stderr for diagnostics.
func (r Result) Output() string {
	return strings.TrimSpace(r.Stdout + r.Stderr)
}

// Runner executes an external command and captures its result.
// A non-zero exit code is reported through Result, not through the error;
// the error is reserved for failures to run the command at all.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner is the default Runner backed by os/exec.
type ExecRunner struct {
	// Dir is the working directory for commands. Empty means inherit.
	Dir string
}

// New creates an ExecRunner running commands in dir.
func New(dir string) *ExecRunner {
	return &ExecRunner{Dir: dir}
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return res, nil
}

// Preflight checks that every named binary is discoverable on PATH.
// All missing binaries are reported in a single error.
func Preflight(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required tools not found on PATH: %s", strings.Join(missing, ", "))
	}
	return nil
}
