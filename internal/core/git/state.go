// Package git provides the repository operations shipit drives: a
// read-only state snapshot taken once at startup, and the mutating
// porcelain commands issued through the process runner seam.
package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// State is the repository snapshot the workflow decides on. It is
// captured once at the start of a run and never re-queried; the
// operations below change branch and cleanliness as side effects that
// are deliberately not re-observed.
type State struct {
	Branch string
	Clean  bool
}

// Inspect captures the current branch and working-tree cleanliness of
// the repository containing path.
func Inspect(path string) (State, error) {
	repo, err := open(path)
	if err != nil {
		return State{}, fmt.Errorf("failed to open repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return State{}, fmt.Errorf("failed to get HEAD: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return State{}, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return State{}, fmt.Errorf("failed to get worktree status: %w", err)
	}

	return State{
		Branch: head.Name().Short(),
		Clean:  status.IsClean(),
	}, nil
}

// IsRepository checks if path is inside a git repository.
func IsRepository(path string) bool {
	_, err := open(path)
	return err == nil
}

// Root resolves the top-level working tree directory of the repository
// containing path.
func Root(path string) (string, error) {
	repo, err := open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// open walks up from path until it finds a .git directory.
func open(path string) (*gogit.Repository, error) {
	return gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
}
