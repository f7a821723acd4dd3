// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/template"

	"github.com/pdiddy/factcheck-bot/pkg/types"
)

// DefaultMaxClaimLen caps the claim text included in a scoring prompt.
const DefaultMaxClaimLen = 2000

// scoringSystemPrompt pins the model to numeric-only replies.
const scoringSystemPrompt = "Ты оцениваешь релевантность источников. Отвечай только числами через запятую."

// scoringPromptTmpl is the user prompt sent for one batch of candidates.
// Candidates carry title and snippet only; links add no relevance signal
// and are withheld.
var scoringPromptTmpl = template.Must(template.New("scoring").Parse(`Ты помощник для оценки релевантности источников к исходному тексту.

Исходный текст:
"""
{{.Claim}}
"""

Кандидаты источников (title, snippet):
{{.Candidates}}

Для каждого источника оцени релевантность от 0 до 100 (насколько этот источник может быть первоисточником или подтверждением информации из текста).
Верни ТОЛЬКО числа через запятую в порядке источников (1, 2, 3...). Пример: 85, 42, 10`))

// buildPrompt renders the scoring prompt for claim and sources. The claim
// is truncated to maxClaimLen runes to bound request size.
func buildPrompt(claim string, sources []types.CandidateSource, maxClaimLen int) string {
	if maxClaimLen <= 0 {
		maxClaimLen = DefaultMaxClaimLen
	}
	if runes := []rune(claim); len(runes) > maxClaimLen {
		claim = string(runes[:maxClaimLen])
	}

	var candidates strings.Builder
	for i, s := range sources {
		if i > 0 {
			candidates.WriteString("\n\n")
		}
		fmt.Fprintf(&candidates, "%d. %s\n   %s", i+1, s.Title, s.Snippet)
	}

	var buf bytes.Buffer
	// The template has no failure modes at runtime; Execute on a Builder
	// target cannot error with these inputs.
	scoringPromptTmpl.Execute(&buf, struct {
		Claim      string
		Candidates string
	}{Claim: claim, Candidates: candidates.String()})
	return buf.String()
}

// defaultOpenAIBase is the standard OpenAI API base; overridden via
// ScoringConfig.BaseURL for OpenAI-compatible providers.
const defaultOpenAIBase = "https://api.openai.com/v1"

// OpenAIBackend calls an OpenAI-compatible chat completions API.
type OpenAIBackend struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

// NewOpenAIBackend builds a backend from config, or returns nil when no
// API key is configured so the caller degrades to zero scores.
func NewOpenAIBackend(cfg types.ScoringConfig, client *http.Client) *OpenAIBackend {
	if cfg.APIKey == "" {
		return nil
	}
	return &OpenAIBackend{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Client:  client,
	}
}

// chatRequest is the request body for the chat completions API.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the chat completions response we consume.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Score submits the prompt and returns the model's text reply.
func (b *OpenAIBackend) Score(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: b.Model,
		Messages: []chatMessage{
			{Role: "system", Content: scoringSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.2,
		MaxTokens:   200,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	base := b.BaseURL
	if base == "" {
		base = defaultOpenAIBase
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimSuffix(base, "/")+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.APIKey)

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling scoring API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("scoring API returned %d: %s", resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decoding scoring response: %w", err)
	}

	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("scoring API returned no choices")
	}
	return cr.Choices[0].Message.Content, nil
}
