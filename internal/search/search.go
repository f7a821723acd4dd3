// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search retrieves candidate evidence sources from a web search
// provider. Retrieval is best-effort: missing credentials or a failing
// provider degrade to an empty result list, never to an error, so the
// pipeline keeps moving with "no evidence found".
package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/pdiddy/factcheck-bot/pkg/types"
)

// Backend queries a single search provider. Implemented by GoogleBackend;
// tests supply a mock.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string, n int) ([]types.CandidateSource, error)
}

// Retrieve asks the backend for up to n sources matching query. A nil
// backend (provider unconfigured) or any provider failure yields an empty
// list; the condition is logged and otherwise swallowed here.
func Retrieve(ctx context.Context, backend Backend, query string, n int, logger *zap.Logger) []types.CandidateSource {
	if backend == nil {
		logger.Warn("search provider not configured, skipping retrieval")
		return nil
	}

	results, err := backend.Search(ctx, query, n)
	if err != nil {
		logger.Warn("search failed",
			zap.String("backend", backend.Name()),
			zap.Error(err))
		return nil
	}

	return results
}
