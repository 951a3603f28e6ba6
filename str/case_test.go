package str

import "testing"

func TestCamelize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"coco_bongo", "CocoBongo"},
		{"co_co-bon_go", "CoCoBonGo"},
		{"CAMELIZE", "Camelize"},
		{"camelize", "Camelize"},
		{"_camel-ize_", "CamelIze"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Camelize(tc.in); got != tc.want {
			t.Errorf("Camelize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCamelizeWithCustomDelimiters(t *testing.T) {
	got, err := CamelizeWith("c.o.c.o", ".")
	if err != nil {
		t.Fatalf("CamelizeWith failed: %v", err)
	}
	if got != "COCO" {
		t.Errorf("expected COCO, got %q", got)
	}
}

func TestCamelizeWithEmptyDelimiters(t *testing.T) {
	if _, err := CamelizeWith("abc", ""); err == nil {
		t.Fatal("expected error for empty delimiter set")
	}
}

func TestUncamelize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CocoBongo", "coco_bongo"},
		{"cocoBongo", "coco_bongo"},
		{"coco", "coco"},
		{"Coco", "coco"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Uncamelize(tc.in); got != tc.want {
			t.Errorf("Uncamelize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUncamelizeWithDelimiterValidation(t *testing.T) {
	if _, err := UncamelizeWith("CocoBongo", "--"); err == nil {
		t.Error("expected error for multi-character delimiter")
	}
	if _, err := UncamelizeWith("CocoBongo", ""); err == nil {
		t.Error("expected error for empty delimiter")
	}

	got, err := UncamelizeWith("CocoBongo", "-")
	if err != nil {
		t.Fatalf("UncamelizeWith failed: %v", err)
	}
	if got != "coco-bongo" {
		t.Errorf("expected coco-bongo, got %q", got)
	}
}

func TestCamelizeUncamelizeStable(t *testing.T) {
	// One normalization pass is stable under further round trips.
	inputs := []string{"CamelCase", "snake_case_words", "Mixed-up_input", "x"}
	for _, in := range inputs {
		once := Uncamelize(Camelize(in))
		twice := Uncamelize(Camelize(once))
		if once != twice {
			t.Errorf("normalization of %q not stable: %q vs %q", in, once, twice)
		}
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"kittens-are_cats", "kittens are cats"},
		{" sim_ple ", "sim ple"},
		{"plain", "plain"},
	}
	for _, tc := range tests {
		if got := Humanize(tc.in); got != tc.want {
			t.Errorf("Humanize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUnderscore(t *testing.T) {
	if got := Underscore("  look  behind "); got != "look_behind" {
		t.Errorf("Underscore = %q", got)
	}
}
