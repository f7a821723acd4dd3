// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxConcurrentRuns bounds simultaneously executing pipeline runs.
const DefaultMaxConcurrentRuns = 16

// Runner executes detached pipeline runs. Each run gets its own panic
// boundary and its completion is always logged, so a fire-and-forget task
// can never vanish silently. Concurrency is bounded; at saturation new
// runs are dropped (and logged) rather than blocking the webhook ack.
type Runner struct {
	group  errgroup.Group
	logger *zap.Logger
}

// NewRunner builds a runner allowing at most limit concurrent runs.
// A non-positive limit selects the default.
func NewRunner(limit int, logger *zap.Logger) *Runner {
	if limit <= 0 {
		limit = DefaultMaxConcurrentRuns
	}
	r := &Runner{logger: logger}
	r.group.SetLimit(limit)
	return r
}

// Go schedules fn as a detached run. It never blocks: when the runner is
// saturated the run is dropped with a warning. Returns whether the run was
// accepted.
func (r *Runner) Go(chatID int64, fn func()) bool {
	started := time.Now()
	accepted := r.group.TryGo(func() error {
		defer func() {
			if p := recover(); p != nil {
				r.logger.Error("panic in detached run",
					zap.Int64("chat_id", chatID),
					zap.Any("panic", p))
			}
		}()
		fn()
		r.logger.Info("run complete",
			zap.Int64("chat_id", chatID),
			zap.Duration("elapsed", time.Since(started)))
		return nil
	})

	if !accepted {
		r.logger.Warn("runner saturated, dropping run", zap.Int64("chat_id", chatID))
	}
	return accepted
}

// Wait blocks until all accepted runs have finished. Used during graceful
// shutdown.
func (r *Runner) Wait() {
	r.group.Wait()
}
