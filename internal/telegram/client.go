// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package telegram is the outbound messaging gateway client. Delivery uses
// bounded retry with linearly increasing delay and a hard per-attempt
// timeout; exhausting retries surfaces the failure to the caller.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/factcheck-bot/internal/httputil"
	"github.com/pdiddy/factcheck-bot/pkg/types"
)

// ParseMode selects the Bot API text markup mode.
type ParseMode string

const (
	ModeMarkdown ParseMode = "Markdown"
	ModeHTML     ParseMode = "HTML"
)

// DefaultAPIBase is the Bot API base URL; the token is appended directly.
const DefaultAPIBase = "https://api.telegram.org/bot"

const defaultTimeout = 10 * time.Second

// Client calls the Telegram Bot API.
type Client struct {
	Token       string
	APIBase     string
	HTTP        *http.Client
	MaxAttempts int
	RetryDelay  time.Duration
}

// NewClient builds a client from config. The token is required; everything
// else falls back to defaults.
func NewClient(cfg types.TelegramConfig) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram bot token is not set")
	}

	base := cfg.APIBase
	if base == "" {
		base = DefaultAPIBase
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		Token:       cfg.Token,
		APIBase:     base,
		HTTP:        &http.Client{Timeout: timeout},
		MaxAttempts: cfg.MaxAttempts,
		RetryDelay:  cfg.RetryDelay,
	}, nil
}

// SendMessage delivers text to a conversation using the given markup mode.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, mode ParseMode) error {
	if mode == "" {
		mode = ModeMarkdown
	}
	return c.call(ctx, "sendMessage", map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": string(mode),
	})
}

// SetWebhook registers url as the bot's webhook endpoint.
func (c *Client) SetWebhook(ctx context.Context, url string) error {
	return c.call(ctx, "setWebhook", map[string]any{"url": url})
}

// DeleteWebhook removes the bot's webhook registration.
func (c *Client) DeleteWebhook(ctx context.Context) error {
	return c.call(ctx, "deleteWebhook", map[string]any{})
}

// call POSTs one Bot API method with retry and maps a non-success response
// to an error carrying the most specific detail available.
func (c *Client) call(ctx context.Context, method string, payload any) error {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIBase+c.Token+"/"+method, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("creating %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(client, req, c.MaxAttempts, c.RetryDelay)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	return fmt.Errorf("telegram %s: %s", method, errorDetail(resp))
}

// apiError is the Bot API error envelope.
type apiError struct {
	Description string `json:"description"`
}

// errorDetail extracts the most specific failure description from a
// non-success response. Empty and non-JSON bodies must not crash the
// caller, so the detail falls back through: parsed description field → raw
// body → status text → "HTTP <code>".
func errorDetail(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Description != "" {
		return apiErr.Description
	}

	if raw := strings.TrimSpace(string(body)); raw != "" {
		return raw
	}

	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}

	return fmt.Sprintf("HTTP %d", resp.StatusCode)
}
