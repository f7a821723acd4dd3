// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/factcheck-bot/pkg/types"
)

func chatReply(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

func TestNewOpenAIBackendRequiresKey(t *testing.T) {
	assert.Nil(t, NewOpenAIBackend(types.ScoringConfig{Model: "gpt-4o-mini"}, nil))
	assert.NotNil(t, NewOpenAIBackend(types.ScoringConfig{APIKey: "sk-x"}, nil))
}

func TestOpenAIScoreRequestShape(t *testing.T) {
	var got chatRequest
	var auth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(chatReply("85, 42"))
	}))
	defer ts.Close()

	b := &OpenAIBackend{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: ts.URL}
	reply, err := b.Score(context.Background(), "rate these")
	require.NoError(t, err)

	assert.Equal(t, "85, 42", reply)
	assert.Equal(t, "Bearer sk-test", auth)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 0.2, got.Temperature)
	assert.Equal(t, 200, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "rate these", got.Messages[1].Content)
}

func TestOpenAIScoreNon200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	b := &OpenAIBackend{APIKey: "sk-test", BaseURL: ts.URL}
	_, err := b.Score(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestOpenAIScoreNoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	b := &OpenAIBackend{APIKey: "sk-test", BaseURL: ts.URL}
	_, err := b.Score(context.Background(), "prompt")
	require.Error(t, err)
}

func TestOpenAIScoreMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>proxy error</html>"))
	}))
	defer ts.Close()

	b := &OpenAIBackend{APIKey: "sk-test", BaseURL: ts.URL}
	_, err := b.Score(context.Background(), "prompt")
	require.Error(t, err)
}
