// Package server exposes the AI assistant over the app's HTTP action
// boundary. AI availability never turns into a 5xx here: failed generations
// come back as fallback-flagged results with a soft notice.
package server

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"gitlab.com/phantrg/vitien-ai/internal/ai"
	"gitlab.com/phantrg/vitien-ai/internal/logger"
)

// UserKeyHeader carries a per-user Gemini key that overrides the
// process-wide default for the duration of one request.
const UserKeyHeader = "X-Gemini-Key"

// Server wires the assistant to HTTP handlers.
type Server struct {
	assistant  *ai.Assistant
	defaultKey string
}

// New creates a server around an assistant and the process-default key.
func New(assistant *ai.Assistant, defaultKey string) *Server {
	return &Server{assistant: assistant, defaultKey: defaultKey}
}

// Handler returns the instrumented route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/ai/scan-receipt", s.handleScanReceipt)
	mux.HandleFunc("POST /api/ai/parse-intent", s.handleParseIntent)
	mux.HandleFunc("POST /api/ai/insight", s.handleInsight)
	mux.HandleFunc("POST /api/ai/debt-reminder", s.handleDebtReminder)
	mux.HandleFunc("POST /api/ai/recurring", s.handleRecurring)
	mux.HandleFunc("POST /api/money/parse", s.handleParseAmount)
	return otelhttp.NewHandler(mux, "vitien-ai")
}

// credential builds the per-call credential from the request header and the
// process default; the settings layer resolved both before this point.
func (s *Server) credential(r *http.Request) ai.Credential {
	return ai.Credential{
		UserKey:    r.Header.Get(UserKeyHeader),
		DefaultKey: s.defaultKey,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info().Str("addr", addr).Msg("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
