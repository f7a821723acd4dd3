// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package claim

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxQueryLen is the default search query length cap, in runes.
const DefaultMaxQueryLen = 100

// BuildQuery reduces text to a single bounded search query. The first
// sentence (up to '.', '!' or '?') is preferred when it fits within maxLen
// runes; otherwise the trimmed text is truncated to maxLen. Empty or
// whitespace-only input yields "", which signals the caller that no query
// can be formed. Deterministic; no external calls.
func BuildQuery(text string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxQueryLen
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	first := trimmed
	if i := strings.IndexAny(trimmed, ".!?"); i >= 0 {
		first = trimmed[:i]
	}
	first = strings.TrimSpace(first)
	if first != "" && utf8.RuneCountInString(first) <= maxLen {
		return first
	}

	runes := []rune(trimmed)
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}
	return strings.TrimSpace(string(runes))
}
