// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/factcheck-bot/internal/pipeline"
	"github.com/pdiddy/factcheck-bot/internal/rank"
	"github.com/pdiddy/factcheck-bot/internal/search"
	"github.com/pdiddy/factcheck-bot/internal/server"
	"github.com/pdiddy/factcheck-bot/internal/telegram"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook service",
	Long: `Serve starts the HTTP server that receives Telegram webhook updates and
runs the fact-checking pipeline for each incoming message. The Telegram
bot token is required; search and scoring credentials are optional, and
the pipeline degrades to fallback replies without them.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	tg, err := telegram.NewClient(cfg.Telegram)
	if err != nil {
		return fmt.Errorf("telegram client: %w", err)
	}

	p := &pipeline.Pipeline{
		Messenger:  tg,
		SearchCfg:  cfg.Search,
		ScoringCfg: cfg.Scoring,
		Cfg:        cfg.Pipeline,
		Logger:     logger,
	}
	// A nil concrete backend must not be assigned to the interface field,
	// or the pipeline would see a non-nil backend holding a nil pointer.
	if gb := search.NewGoogleBackend(cfg.Search, &http.Client{Timeout: cfg.Search.Timeout}); gb != nil {
		p.Search = gb
	} else {
		logger.Warn("search backend disabled, no credentials configured")
	}
	if ob := rank.NewOpenAIBackend(cfg.Scoring, &http.Client{Timeout: cfg.Scoring.Timeout}); ob != nil {
		p.Scorer = ob
	} else {
		logger.Warn("scoring backend disabled, no API key configured")
	}

	runner := server.NewRunner(cfg.Server.MaxConcurrentRuns, logger)
	handler := &server.Handler{
		Run:    p.Run,
		Runner: runner,
		Logger: logger,
	}
	srv := server.New(cfg.Server.Addr, handler, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting webhook server", zap.String("addr", cfg.Server.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
