// Package filelock guards in-place runs against each other.
//
// When the tool is allowed to rewrite files (-i, which also enables the
// analyzer's --fix-errors), two concurrent runs over the same tree would
// race on the same files and can interleave partial rewrites. An exclusive
// lock on a well-known lock file in the working directory keeps in-place
// runs mutually exclusive; read-only runs never take the lock.
package filelock

import (
	"fmt"

	"github.com/gofrs/flock"
)

// DefaultLockFile is the lock taken by in-place runs, created in the
// working directory next to the ignore file.
const DefaultLockFile = ".clang-lint.lock"

// RunLock is an exclusive, process-level lock for in-place runs.
type RunLock struct {
	flock *flock.Flock
	path  string
}

// New creates a lock backed by the given lock file path.
func New(path string) *RunLock {
	return &RunLock{flock: flock.New(path), path: path}
}

// Acquire takes the lock without blocking. A lock already held by another
// run is reported as an error rather than waited on: a CI step should fail
// fast instead of queueing behind an unknown writer.
func (l *RunLock) Acquire() error {
	acquired, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	if !acquired {
		return fmt.Errorf("another in-place run holds %s", l.path)
	}
	return nil
}

// Release releases the lock.
func (l *RunLock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
