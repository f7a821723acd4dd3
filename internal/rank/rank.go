// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank scores candidate sources for relevance against the original
// claim and orders them best-first. Scoring is delegated to a language
// model behind the Backend interface; the reply is parsed defensively and
// any failure degrades the whole batch to zero scores rather than failing
// the pipeline. All-or-nothing per batch keeps the resulting order
// explainable.
package rank

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/pdiddy/factcheck-bot/pkg/types"
)

// Backend submits one scoring prompt and returns the model's raw text
// reply. Implemented by OpenAIBackend; tests supply a mock.
type Backend interface {
	Score(ctx context.Context, prompt string) (string, error)
}

// Rank annotates sources with relevance scores in [0, 100] and sorts them
// descending by score (stable, so provider order breaks ties). With a nil
// backend or an empty candidate list every score is 0 and the input order
// is preserved. Rank never returns an error: a failed scoring call is
// logged and the batch falls back to zero scores.
func Rank(ctx context.Context, backend Backend, claim string, sources []types.CandidateSource, cfg types.ScoringConfig, logger *zap.Logger) []types.ScoredSource {
	if len(sources) == 0 {
		return nil
	}
	if backend == nil {
		logger.Warn("scoring backend not configured, all sources scored 0")
		return zeroScored(sources)
	}

	prompt := buildPrompt(claim, sources, cfg.MaxClaimLen)

	reply, err := backend.Score(ctx, prompt)
	if err != nil {
		logger.Warn("scoring failed, all sources scored 0", zap.Error(err))
		return zeroScored(sources)
	}

	scores := ParseScores(reply, len(sources))

	scored := make([]types.ScoredSource, len(sources))
	for i, s := range sources {
		scored[i] = types.ScoredSource{CandidateSource: s, Score: scores[i]}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// zeroScored maps sources to ScoredSource with score 0, order preserved.
func zeroScored(sources []types.CandidateSource) []types.ScoredSource {
	scored := make([]types.ScoredSource, len(sources))
	for i, s := range sources {
		scored[i] = types.ScoredSource{CandidateSource: s}
	}
	return scored
}
