package stream

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/interprep/internal/stream/redis"
	"github.com/rs/zerolog"
)

type StreamConfig struct {
	Provider    string // only redis for now
	RedisConfig *redis.RedisStreamConfig
}

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	exec redis.Evaluator,
	logger *zerolog.Logger,
) (StreamConsumer, error) {

	// If provider is empty, fallback to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := redis.Connect(ctx, cfg.RedisConfig, logger)
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(client, cfg.RedisConfig, exec, logger), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
