// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package claim

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"empty", "", 100, ""},
		{"whitespace only", "   \n\t  ", 100, ""},
		{"short sentence verbatim", "Rain is wet.", 100, "Rain is wet"},
		{"exclamation terminator", "Big news! More text follows.", 100, "Big news"},
		{"question terminator", "Is it true? Nobody knows.", 100, "Is it true"},
		{"no terminator", "just a few words", 100, "just a few words"},
		{"surrounding whitespace trimmed", "  hello world.  ", 100, "hello world"},
		{
			"first sentence over limit falls back to truncation",
			strings.Repeat("a", 30) + " " + strings.Repeat("b", 30) + ". tail",
			20,
			strings.Repeat("a", 20),
		},
		{
			"leading clause cut at first dot inside url",
			"Ссылка https://t.me/news/42 утверждает рост на 10%",
			100,
			"Ссылка https://t",
		},
		{"zero maxLen uses default", "short one.", 0, "short one"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildQuery(tt.text, tt.maxLen); got != tt.want {
				t.Errorf("BuildQuery(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestBuildQueryLengthBound(t *testing.T) {
	// Multibyte input must be truncated by runes, not bytes.
	text := strings.Repeat("ы", 500)
	for _, maxLen := range []int{1, 10, 100, 499} {
		got := BuildQuery(text, maxLen)
		if n := utf8.RuneCountInString(got); n > maxLen {
			t.Errorf("maxLen %d: query has %d runes", maxLen, n)
		}
		if !utf8.ValidString(got) {
			t.Errorf("maxLen %d: invalid UTF-8 output", maxLen)
		}
	}
}

func TestBuildQueryDeterministic(t *testing.T) {
	text := "Исследование показало рост на 10%. Подробности внутри."
	first := BuildQuery(text, 100)
	for i := 0; i < 5; i++ {
		if got := BuildQuery(text, 100); got != first {
			t.Fatalf("run %d: %q != %q", i, got, first)
		}
	}
}
