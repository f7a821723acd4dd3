// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences the claim-to-evidence stages for one inbound
// message: reference extraction, query building, evidence retrieval,
// relevance ranking, and digest rendering. The pipeline owns every
// user-visible status and error message. Each stage with an unmet
// precondition replies and stops; retrieval and ranking failures have
// already been degraded to empty/zero results by their own packages, so
// the only errors that reach the top of a run are message delivery
// failures and genuine defects.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/factcheck-bot/internal/claim"
	"github.com/pdiddy/factcheck-bot/internal/rank"
	"github.com/pdiddy/factcheck-bot/internal/search"
	"github.com/pdiddy/factcheck-bot/internal/telegram"
	"github.com/pdiddy/factcheck-bot/pkg/types"
)

// Default orchestration knobs; see types.PipelineConfig.
const (
	DefaultMinScore   = 20
	DefaultMaxSources = 3
)

// User-facing messages. The bot speaks Russian to its audience; operators
// read the retrieval diagnostic, so it names the configuration variables.
const (
	msgProcessing = "🔍 Обрабатываю запрос..."
	msgNoText     = "❌ Не удалось извлечь текст. Отправьте текст или ссылку на пост."
	msgNoQuery    = "❌ Не удалось сформировать поисковый запрос."
	msgSearching  = "🌐 Ищу источники..."
	msgNoResults  = "❌ Поиск не вернул результатов. Проверьте настройки поиска (FACTCHECK_SEARCH_API_KEY, FACTCHECK_SEARCH_ENGINE_ID)."
	msgRanking    = "🤖 Анализирую релевантность..."
	msgInternal   = "❌ Произошла ошибка при обработке. Попробуйте позже."
)

// Messenger delivers a text message to a conversation. Satisfied by
// *telegram.Client; tests and the check command substitute their own.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string, mode telegram.ParseMode) error
}

// Pipeline holds the injected collaborators and configuration for pipeline
// runs. A nil Search or Scorer backend means that stage is unconfigured
// and degrades per its package contract.
type Pipeline struct {
	Search    search.Backend
	Scorer    rank.Backend
	Messenger Messenger

	SearchCfg  types.SearchConfig
	ScoringCfg types.ScoringConfig
	Cfg        types.PipelineConfig

	Logger *zap.Logger
}

// Run executes the pipeline for one inbound message. It never returns an
// error: failures terminal to the run are reported to the user, and a
// defect anywhere inside the run is caught here, logged, and answered with
// a single generic failure message. A secondary failure while sending that
// message is logged and discarded so it cannot mask the primary one.
func (p *Pipeline) Run(ctx context.Context, chatID int64, text string) {
	defer func() {
		if r := recover(); r != nil {
			p.Logger.Error("panic in pipeline run",
				zap.Int64("chat_id", chatID),
				zap.Any("panic", r))
			p.notifyFailure(ctx, chatID)
		}
	}()

	if err := p.run(ctx, chatID, text); err != nil {
		p.Logger.Error("pipeline run failed",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		p.notifyFailure(ctx, chatID)
	}
}

// run is the state machine proper. Every returned error is a message
// delivery failure.
func (p *Pipeline) run(ctx context.Context, chatID int64, text string) error {
	if err := p.send(ctx, chatID, msgProcessing); err != nil {
		return err
	}

	// Extract: collect post references; the pipeline keeps operating on
	// the raw text since reference content cannot be resolved.
	claimText, refs := claim.ExtractRefs(text)
	if strings.TrimSpace(claimText) == "" {
		return p.send(ctx, chatID, msgNoText)
	}
	if len(refs) > 0 {
		notice := fmt.Sprintf("📎 Обнаружено %d ссылок на Telegram-посты. Обрабатываю текст...", len(refs))
		if err := p.send(ctx, chatID, notice); err != nil {
			return err
		}
	}

	query := claim.BuildQuery(claimText, p.Cfg.MaxQueryLen)
	if query == "" {
		return p.send(ctx, chatID, msgNoQuery)
	}

	if err := p.send(ctx, chatID, msgSearching); err != nil {
		return err
	}
	results := search.Retrieve(ctx, p.Search, query, p.SearchCfg.MaxResults, p.Logger)
	if len(results) == 0 {
		return p.send(ctx, chatID, msgNoResults)
	}

	if err := p.send(ctx, chatID, msgRanking); err != nil {
		return err
	}
	ranked := rank.Rank(ctx, p.Scorer, claimText, results, p.ScoringCfg, p.Logger)

	top := selectTop(ranked, p.minScore(), p.maxSources())
	if len(top) == 0 {
		return p.send(ctx, chatID, renderFallback(results, p.maxSources()))
	}

	return p.send(ctx, chatID, renderDigest(top))
}

// selectTop keeps sources at or above the acceptance threshold, at most
// maxSources of them. Input is already sorted best-first.
func selectTop(ranked []types.ScoredSource, minScore, maxSources int) []types.ScoredSource {
	var top []types.ScoredSource
	for _, s := range ranked {
		if s.Score >= minScore {
			top = append(top, s)
		}
	}
	if len(top) > maxSources {
		top = top[:maxSources]
	}
	return top
}

func (p *Pipeline) send(ctx context.Context, chatID int64, text string) error {
	return p.Messenger.SendMessage(ctx, chatID, text, telegram.ModeMarkdown)
}

// notifyFailure makes one best-effort attempt to tell the user the run
// failed; its own failure is logged and dropped.
func (p *Pipeline) notifyFailure(ctx context.Context, chatID int64) {
	if err := p.send(ctx, chatID, msgInternal); err != nil {
		p.Logger.Error("failed to notify user of processing error",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

func (p *Pipeline) minScore() int {
	if p.Cfg.MinScore > 0 {
		return p.Cfg.MinScore
	}
	return DefaultMinScore
}

func (p *Pipeline) maxSources() int {
	if p.Cfg.MaxSources > 0 {
		return p.Cfg.MaxSources
	}
	return DefaultMaxSources
}
