// Package main is the entry point for the finance tracker AI service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/phantrg/vitien-ai/internal/ai"
	"gitlab.com/phantrg/vitien-ai/internal/config"
	"gitlab.com/phantrg/vitien-ai/internal/logger"
	"gitlab.com/phantrg/vitien-ai/internal/server"
	"gitlab.com/phantrg/vitien-ai/internal/telemetry"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("vitien-ai %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.SetLevel(cfg.LogLevel)
	if cfg.LogJSON {
		logger.SetJSON()
	}

	shutdownTelemetry, err := telemetry.Setup(ctx, "vitien-ai")
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to set up telemetry")
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Log.Warn().Err(err).Msg("Telemetry shutdown failed")
		}
	}()

	if cfg.HasDefaultCredential() {
		logger.Log.Info().Str("key", logger.RedactKey(cfg.GeminiAPIKey)).
			Str("model", cfg.GeminiModel).Msg("Default Gemini credential configured")
	} else {
		logger.Log.Warn().Msg("No Gemini credential configured, AI operations run fallback-only")
	}

	assistant := ai.NewAssistant(cfg.GeminiModel)
	srv := server.New(assistant, cfg.GeminiAPIKey)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Log.Info().Msg("Shutting down...")
		cancel()
	}()

	if err := srv.Run(ctx, cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatal().Err(err).Msg("HTTP server failed")
	}
}
