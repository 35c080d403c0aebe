package version

import (
	"strings"
	"testing"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if !strings.Contains(Version, ".") {
		t.Errorf("Version %q is not dotted", Version)
	}
}

func TestVersionOverride(t *testing.T) {
	orig, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = orig, origCommit, origDate
	}()

	// simulates build-time -ldflags
	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2026-01-15T10:30:00Z"

	if Version != "1.2.3" || GitCommit != "abc123def456" || BuildDate != "2026-01-15T10:30:00Z" {
		t.Errorf("override failed: %q %q %q", Version, GitCommit, BuildDate)
	}
}
