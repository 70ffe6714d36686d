// Package filelock coordinates exclusive access to a report file across
// processes while it is rewritten in place. The lock is advisory: only
// cooperating perfreport invocations observe it.
package filelock

import (
	"fmt"

	"github.com/gofrs/flock"
)

// Guard holds an advisory lock alongside a report file.
type Guard struct {
	flock *flock.Flock
	path  string
}

// ForReport creates a guard whose lock file sits next to the report file,
// at "<report>.lock". The lock file is left in place after release.
func ForReport(reportPath string) *Guard {
	lockPath := reportPath + ".lock"
	return &Guard{
		flock: flock.New(lockPath),
		path:  lockPath,
	}
}

// Path returns the location of the lock file.
func (g *Guard) Path() string {
	return g.path
}

// Acquire takes an exclusive lock, blocking until it is available.
func (g *Guard) Acquire() error {
	if err := g.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", g.path, err)
	}
	return nil
}

// TryAcquire attempts to take an exclusive lock without blocking.
// Returns true if the lock was acquired, false if another process holds it.
func (g *Guard) TryAcquire() (bool, error) {
	acquired, err := g.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", g.path, err)
	}
	return acquired, nil
}

// Release releases the lock.
func (g *Guard) Release() error {
	if err := g.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", g.path, err)
	}
	return nil
}
