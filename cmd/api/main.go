package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/interprep/internal/api"
	"github.com/povarna/generative-ai-agents/interprep/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/interprep/internal/setup"
	applog "github.com/povarna/generative-ai-agents/interprep/internal/setup/logger"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg := setup.LoadConfig()

	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = applog.New(cfg.LogLevel, cfg.LogFormat)
	logger := log.Logger

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	// API
	handler := api.NewHandler(api.HandlerOptions{
		Evaluator:   deps.Executor,
		Rubric:      deps.Rubric,
		Catalog:     deps.Catalog,
		Lessons:     deps.Lessons,
		Transcriber: deps.Transcriber,
		Archive:     deps.Archive,
	}, &logger)

	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)
	api.RegisterOpenAPI(container)

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	// Server
	addr := fmt.Sprintf(":%s", cfg.APIPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           corsHandler.Handler(container),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}()

	log.Info().Str("address", addr).Msg("Starting interprep API")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Server failed")
	}
	log.Info().Msg("interprep API stopped")
}
