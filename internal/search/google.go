// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/factcheck-bot/pkg/types"
)

// googleSearchBase is the Google Custom Search endpoint. Declared as a var
// so tests can substitute an httptest server.
var googleSearchBase = "https://www.googleapis.com/customsearch/v1"

// googleMaxResults is the provider's hard cap on results per request.
const googleMaxResults = 10

// GoogleBackend queries the Google Custom Search API.
type GoogleBackend struct {
	Client *http.Client

	// APIKey and EngineID are both required; NewGoogleBackend returns nil
	// when either is missing.
	APIKey   string
	EngineID string

	UserAgent string
}

// NewGoogleBackend builds a backend from config, or returns nil when the
// required credentials are absent so the caller degrades gracefully.
func NewGoogleBackend(cfg types.SearchConfig, client *http.Client) *GoogleBackend {
	if cfg.APIKey == "" || cfg.EngineID == "" {
		return nil
	}
	return &GoogleBackend{
		Client:    client,
		APIKey:    cfg.APIKey,
		EngineID:  cfg.EngineID,
		UserAgent: cfg.UserAgent,
	}
}

// Name returns the backend identifier.
func (b *GoogleBackend) Name() string { return "google" }

// googleResponse is the subset of the Custom Search response we consume.
type googleResponse struct {
	Items []googleItem `json:"items"`
}

type googleItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Search queries the Custom Search API for up to n results. Items with
// missing fields come back with empty strings rather than being rejected.
func (b *GoogleBackend) Search(ctx context.Context, query string, n int) ([]types.CandidateSource, error) {
	if n <= 0 || n > googleMaxResults {
		n = googleMaxResults
	}

	params := url.Values{
		"key": {b.APIKey},
		"cx":  {b.EngineID},
		"q":   {query},
		"num": {fmt.Sprintf("%d", n)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleSearchBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if b.UserAgent != "" {
		req.Header.Set("User-Agent", b.UserAgent)
	}

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Custom Search API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Custom Search API returned HTTP %d", resp.StatusCode)
	}

	var gr googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("parsing Custom Search response: %w", err)
	}

	results := make([]types.CandidateSource, 0, len(gr.Items))
	for _, item := range gr.Items {
		results = append(results, types.CandidateSource{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}
	return results, nil
}
