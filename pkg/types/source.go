// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the fact-checking pipeline.
package types

// CandidateSource is a single web search result considered as potential
// evidence for a claim. Fields the provider omits are empty strings.
type CandidateSource struct {
	// Title is the result title as returned by the provider.
	Title string `json:"title" yaml:"title"`

	// Link is the result URL.
	Link string `json:"link" yaml:"link"`

	// Snippet is the provider's text excerpt for the result.
	Snippet string `json:"snippet" yaml:"snippet"`
}

// ScoredSource is a CandidateSource annotated with a relevance score.
type ScoredSource struct {
	CandidateSource `yaml:",inline"`

	// Score is the relevance of the source to the claim, 0-100 inclusive.
	// 0 also stands in for "scoring unavailable".
	Score int `json:"score" yaml:"score"`
}

// PostRef is a structured reference to a Telegram channel post extracted
// from a t.me link embedded in message text.
type PostRef struct {
	// Channel is the channel slug from the link.
	Channel string `json:"channel" yaml:"channel"`

	// ID is the numeric post identifier. Non-negative when Valid.
	ID int `json:"id" yaml:"id"`

	// Valid reports whether the link matched the post-link pattern.
	Valid bool `json:"valid" yaml:"valid"`
}
