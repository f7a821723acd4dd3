// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package claim turns raw message text into pipeline inputs: it extracts
// embedded Telegram post references, builds a bounded search query, and
// pulls structural facts (dates, numbers, names) out of free text. All of
// it is pure parsing; nothing here touches the network.
package claim

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/factcheck-bot/pkg/types"
)

// linkPattern finds anything that looks like a Telegram link. Candidates
// are validated against postPattern afterwards.
var linkPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:t\.me|telegram\.me)/\S+`)

// postPattern matches a full channel-post link: t.me/<channel>/<numeric id>,
// scheme optional. Anchored so a trailing non-numeric segment fails the
// match instead of truncating to its leading digits.
var postPattern = regexp.MustCompile(`(?i)^(?:https?://)?(?:t\.me|telegram\.me)/([^/]+)/([0-9]+)$`)

// ParsePostLink parses a single Telegram post link. A trailing query string
// is ignored. Links that do not end in a numeric post identifier come back
// with Valid false.
func ParsePostLink(raw string) types.PostRef {
	cleaned, _, _ := strings.Cut(raw, "?")

	m := postPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return types.PostRef{}
	}

	id, err := strconv.Atoi(m[2])
	if err != nil {
		// Numeric segment too large to represent.
		return types.PostRef{}
	}

	return types.PostRef{Channel: m[1], ID: id, Valid: true}
}

// ExtractRefs scans text for Telegram post links and returns the text
// unchanged together with the valid references found, in order of
// appearance. Reference content is never substituted into the text.
func ExtractRefs(text string) (string, []types.PostRef) {
	if text == "" {
		return "", nil
	}

	var refs []types.PostRef
	for _, link := range linkPattern.FindAllString(text, -1) {
		if ref := ParsePostLink(link); ref.Valid {
			refs = append(refs, ref)
		}
	}

	return text, refs
}

// ErrPostUnavailable is returned by FetchPost: resolving a post's content
// needs channel access the bot does not have, so the pipeline always
// operates on the message text itself.
var ErrPostUnavailable = errors.New("post content resolution is not available")

// FetchPost would retrieve the text of a referenced channel post. It is a
// stub that always fails with ErrPostUnavailable.
func FetchPost(_ context.Context, _ types.PostRef) (string, error) {
	return "", ErrPostUnavailable
}
