package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version == "" {
		t.Error("expected non-empty version")
	}
	if len(info.GitCommit) > 7 {
		t.Errorf("expected short commit, got %q", info.GitCommit)
	}
}

func TestShort(t *testing.T) {
	if got := Short(); !strings.HasPrefix(got, Version) {
		t.Errorf("expected Short to start with %q, got %q", Version, got)
	}
}

func TestFull(t *testing.T) {
	if got := Full(); !strings.HasPrefix(got, Short()) {
		t.Errorf("expected Full to extend Short, got %q", got)
	}
}
