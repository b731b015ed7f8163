package tui

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateName(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"Life 2D", 10, "Life 2D"},
		{"Life on a cube", 8, "Life on."},
		{"Жизнь на сфере", 6, "Жизнь."},
		{"глайдер", 7, "глайдер"},
		{"日本語のなまえ", 4, "日本語."},
		{"anything", 0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := truncateName(tc.in, tc.maxLen)
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
			if !utf8.ValidString(got) {
				t.Errorf("result %q is not valid UTF-8", got)
			}
		})
	}
}
