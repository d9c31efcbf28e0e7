package internal

import (
	"regexp"
	"strings"
	"testing"
)

func TestGenerateCardID(t *testing.T) {
	id := GenerateCardID("你好")

	if !regexp.MustCompile(`^\d+_[0-9a-f]{8}$`).MatchString(id) {
		t.Errorf("Unexpected ID format: %s", id)
	}
	// md5("你好") starts with 7eca689f
	if !strings.HasSuffix(id, "_7eca689f") {
		t.Errorf("Expected hash suffix _7eca689f, got %s", id)
	}
	if GenerateCardID("谢谢")[len(id)-8:] == id[len(id)-8:] {
		t.Error("Different words should have different hash suffixes")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello", "hello"},
		{"你好", "你好"},
		{"nǐ hǎo", "nǐ_hǎo"},
		{"a/b\\c", "a_b_c"},
		{"HSK-1_deck", "HSK-1_deck"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
