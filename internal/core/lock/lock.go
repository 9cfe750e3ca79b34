// Package lock provides a per-repository run lock so two shipit runs
// cannot mutate the same working tree at once.
package lock

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFile is the lock filename inside the repository's .git directory.
const LockFile = "shipit.lock"

// ErrHeld indicates another shipit run already holds the repository.
var ErrHeld = errors.New("another shipit run is already in progress")

// Lock guards a repository for the duration of a run.
type Lock struct {
	fl *flock.Flock
}

// New creates a lock for the repository rooted at repoPath.
func New(repoPath string) *Lock {
	return &Lock{
		fl: flock.New(filepath.Join(repoPath, ".git", LockFile)),
	}
}

// Acquire takes the lock without blocking. ErrHeld is returned when a
// concurrent run owns it.
func (l *Lock) Acquire() error {
	ok, err := l.fl.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire repository lock: %w", err)
	}
	if !ok {
		return ErrHeld
	}
	return nil
}

// Release drops the lock. Safe to call when the lock was never acquired.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}
