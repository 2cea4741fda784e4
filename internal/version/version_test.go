package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersionContainsSemverParts(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	if Version == "" {
		t.Fatal("Version should have a default value")
	}
	if got := strings.Count(Version, "."); got != 2 {
		t.Errorf("Version %q: want 2 dots, got %d", Version, got)
	}
}

func TestBuildMetadataOverridable(t *testing.T) {
	origCommit, origMessage, origDate := GitCommit, GitMessage, BuildDate
	defer func() {
		GitCommit, GitMessage, BuildDate = origCommit, origMessage, origDate
	}()

	GitCommit = "abc123def456"
	GitMessage = "initial release"
	BuildDate = "2026-01-15T10:30:00Z"

	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q", GitCommit)
	}
	if GitMessage != "initial release" {
		t.Errorf("GitMessage = %q", GitMessage)
	}
	if BuildDate != "2026-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q", BuildDate)
	}
}
