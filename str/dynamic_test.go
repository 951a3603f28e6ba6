package str

import (
	"strings"
	"testing"
)

func TestDynamicSingleChoice(t *testing.T) {
	got, err := Dynamic("{Hi}, friend!", "{", "}", "|")
	if err != nil {
		t.Fatalf("Dynamic failed: %v", err)
	}
	if got != "Hi, friend!" {
		t.Errorf("expected substitution, got %q", got)
	}
}

func TestDynamicPicksAmongAlternatives(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		got, err := Dynamic("{Hi|Hello|Hey} Bob", "{", "}", "|")
		if err != nil {
			t.Fatalf("Dynamic failed: %v", err)
		}
		if got != "Hi Bob" && got != "Hello Bob" && got != "Hey Bob" {
			t.Fatalf("unexpected output %q", got)
		}
		seen[got] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected all alternatives over 200 draws, saw %v", seen)
	}
}

func TestDynamicMultipleGroups(t *testing.T) {
	got, err := Dynamic("{a}-{b}", "{", "}", "|")
	if err != nil {
		t.Fatalf("Dynamic failed: %v", err)
	}
	if got != "a-b" {
		t.Errorf("expected a-b, got %q", got)
	}
}

func TestDynamicNoGroups(t *testing.T) {
	got, err := Dynamic("plain text", "{", "}", "|")
	if err != nil {
		t.Fatalf("Dynamic failed: %v", err)
	}
	if got != "plain text" {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestDynamicUnbalanced(t *testing.T) {
	for _, tc := range []string{"{open", "close}", "{a}{b"} {
		if _, err := Dynamic(tc, "{", "}", "|"); err == nil {
			t.Errorf("Dynamic(%q) expected error", tc)
		}
	}
}

func TestDynamicCustomDelimiters(t *testing.T) {
	got, err := Dynamic("[[Hi]] there", "[[", "]]", "/")
	if err != nil {
		t.Fatalf("Dynamic failed: %v", err)
	}
	if !strings.HasPrefix(got, "Hi") {
		t.Errorf("expected Hi prefix, got %q", got)
	}
}
