// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "factcheck-bot/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the evidence retrieval stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the Google Custom Search API key. Empty means search is
	// unconfigured and retrieval degrades to no results.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// EngineID is the Custom Search Engine identifier (cx parameter).
	EngineID string `json:"engine_id,omitempty" yaml:"engine_id,omitempty"`

	// MaxResults is the number of results requested per query (default 10,
	// which is also the provider's hard cap per request).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ScoringConfig holds settings for the relevance scoring stage.
type ScoringConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the authentication key for the scoring API. Empty means
	// scoring is unconfigured and every candidate scores 0.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Model is the model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// BaseURL is an optional alternate API base for OpenAI-compatible
	// providers (e.g. an OpenRouter endpoint).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// MaxClaimLen caps the claim length, in runes, included in the scoring
	// request (default 2000). Bounds cost and latency per request.
	MaxClaimLen int `json:"max_claim_len" yaml:"max_claim_len"`
}

// TelegramConfig holds settings for the messaging gateway client.
type TelegramConfig struct {
	HTTPConfig `yaml:",inline"`

	// Token is the bot token. Required to run the service.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// APIBase is the Bot API base URL ending in "/bot" (default
	// "https://api.telegram.org/bot").
	APIBase string `json:"api_base" yaml:"api_base"`

	// MaxAttempts is the total number of delivery attempts per message
	// (default 3).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`

	// RetryDelay is the base delay between delivery attempts; the wait
	// grows linearly with the attempt number (default 1s).
	RetryDelay time.Duration `json:"retry_delay" yaml:"retry_delay"`
}

// PipelineConfig holds the orchestration knobs.
type PipelineConfig struct {
	// MaxQueryLen is the maximum search query length in runes (default 100).
	MaxQueryLen int `json:"max_query_len" yaml:"max_query_len"`

	// MinScore is the acceptance threshold: sources scoring below it are
	// excluded from the digest (default 20).
	MinScore int `json:"min_score" yaml:"min_score"`

	// MaxSources is the maximum number of sources in the digest (default 3).
	MaxSources int `json:"max_sources" yaml:"max_sources"`
}

// ServerConfig holds settings for the webhook HTTP server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// MaxConcurrentRuns bounds simultaneously executing pipeline runs
	// (default 16).
	MaxConcurrentRuns int `json:"max_concurrent_runs" yaml:"max_concurrent_runs"`
}

// BotConfig groups all component configurations.
type BotConfig struct {
	Search   SearchConfig   `json:"search" yaml:"search"`
	Scoring  ScoringConfig  `json:"scoring" yaml:"scoring"`
	Telegram TelegramConfig `json:"telegram" yaml:"telegram"`
	Pipeline PipelineConfig `json:"pipeline" yaml:"pipeline"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}
