// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server is the inbound webhook boundary. It always acknowledges
// the transport — malformed bodies and textless updates are dropped with a
// success response so the gateway never builds a retry backlog — and hands
// each usable message to a detached pipeline run. Concurrent updates for
// the same conversation are processed independently; their status messages
// may interleave.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RunFunc executes one pipeline run for a conversation.
type RunFunc func(ctx context.Context, chatID int64, text string)

// Handler serves the webhook and health endpoints.
type Handler struct {
	Run    RunFunc
	Runner *Runner
	Logger *zap.Logger
}

// Routes returns the HTTP mux for the service.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /webhook", h.handleWebhook)
	mux.HandleFunc("GET /webhook", h.handleHealth)
	mux.HandleFunc("GET /healthz", h.handleHealth)
	return mux
}

// handleWebhook acknowledges the update and detaches the pipeline run.
// The response never depends on the run's outcome.
func (h *Handler) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var update Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.Logger.Warn("invalid webhook body", zap.Error(err))
		writeJSON(w, map[string]any{"ok": true})
		return
	}

	chatID, text, ok := update.Content()
	if !ok {
		writeJSON(w, map[string]any{"ok": true})
		return
	}

	// The run must outlive this request, so it gets a fresh context.
	h.Runner.Go(chatID, func() {
		h.Run(context.Background(), chatID, text)
	})

	writeJSON(w, map[string]any{"ok": true})
}

// healthResponse is the static readiness payload.
type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, healthResponse{
		Status:    "ok",
		Message:   "webhook endpoint is ready",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// Server couples the HTTP listener with the run executor so shutdown can
// drain both.
type Server struct {
	HTTP   *http.Server
	Runner *Runner
	Logger *zap.Logger
}

// New builds a server listening on addr.
func New(addr string, h *Handler, logger *zap.Logger) *Server {
	return &Server{
		HTTP: &http.Server{
			Addr:              addr,
			Handler:           h.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		Runner: h.Runner,
		Logger: logger,
	}
}

// ListenAndServe blocks serving HTTP until Shutdown or a listener error.
func (s *Server) ListenAndServe() error {
	s.Logger.Info("listening", zap.String("addr", s.HTTP.Addr))
	return s.HTTP.ListenAndServe()
}

// Shutdown stops accepting requests, then waits for in-flight pipeline
// runs to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.HTTP.Shutdown(ctx)
	s.Runner.Wait()
	return err
}
