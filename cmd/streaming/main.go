package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/interprep/internal/setup"
	applog "github.com/povarna/generative-ai-agents/interprep/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/interprep/internal/stream"
	"github.com/povarna/generative-ai-agents/interprep/internal/stream/redis"
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

	consumerName, _ := os.Hostname()
	if name := os.Getenv("CONSUMER_NAME"); name != "" {
		consumerName = name
	}

	streamCfg := &stream.StreamConfig{
		Provider: os.Getenv("STREAM_PROVIDER"),
		RedisConfig: redis.NewRedisStreamConfig(
			cfg.RedisAddr,
			cfg.RedisPassword,
			stream.DefaultRequestStream,
			stream.DefaultResultStream,
			stream.DefaultGroup,
			consumerName,
		),
	}

	consumer, err := stream.NewStreamConsumer(ctx, streamCfg, deps.Executor, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream consumer")
	}
	defer consumer.Stop()

	// Setup consumer
	if err := consumer.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup consumer")
	}

	// Start consumer
	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Consumer stopped with error")
		}
	}()

	// Wait for context to be done
	<-ctx.Done()
	logger.Info().Msg("Shutting down...")

	log.Info().Msg("interprep worker stopped")
}
