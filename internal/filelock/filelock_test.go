package filelock

import (
	"path/filepath"
	"testing"
)

func TestForReport_LockPath(t *testing.T) {
	guard := ForReport("/tmp/report.md")

	if guard.Path() != "/tmp/report.md.lock" {
		t.Errorf("Path() = %q, want /tmp/report.md.lock", guard.Path())
	}
}

func TestAcquireRelease(t *testing.T) {
	report := filepath.Join(t.TempDir(), "report.md")

	guard := ForReport(report)
	if err := guard.Acquire(); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if err := guard.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
}

func TestTryAcquire(t *testing.T) {
	report := filepath.Join(t.TempDir(), "report.md")

	first := ForReport(report)
	second := ForReport(report)

	acquired, err := first.TryAcquire()
	if err != nil {
		t.Fatalf("TryAcquire failed: %v", err)
	}
	if !acquired {
		t.Fatal("first TryAcquire should succeed")
	}

	// Second guard targets the same lock file and must be refused
	acquired, err = second.TryAcquire()
	if err != nil {
		t.Fatalf("TryAcquire failed: %v", err)
	}
	if acquired {
		t.Error("second TryAcquire should fail while the lock is held")
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	acquired, err = second.TryAcquire()
	if err != nil {
		t.Fatalf("TryAcquire failed: %v", err)
	}
	if !acquired {
		t.Error("TryAcquire should succeed after release")
	}
	_ = second.Release()
}
