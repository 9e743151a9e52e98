package cli

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateString(t *testing.T) {
	cases := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"AAPL", 10, "AAPL"},
		{"Reliance Industries Limited", 12, "Reliance ..."},
		// Company names with multi-byte runes must not be cut mid-rune.
		{"Møller-Mærsk A/S Holdings", 10, "Møller-..."},
		{"日本電信電話株式会社の長い名前", 8, "日本電信電..."},
	}

	for _, tc := range cases {
		got := truncateString(tc.input, tc.maxLen)
		if got != tc.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tc.input, tc.maxLen, got, tc.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncateString(%q, %d) produced invalid UTF-8: %q", tc.input, tc.maxLen, got)
		}
	}
}
