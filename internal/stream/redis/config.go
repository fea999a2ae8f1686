package redis

import (
	"context"

	redisconn "github.com/povarna/generative-ai-agents/interprep/internal/redis"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type RedisStreamConfig struct {
	RedisAddr     string
	RedisPassword string
	Stream        string
	ResultStream  string
	Group         string
	ConsumerName  string
	// ResultMaxLen caps the result stream (approximate trimming). Zero keeps everything.
	ResultMaxLen int64
}

func NewRedisStreamConfig(redisAddr string, redisPassword string, stream string, resultStream string, group string, consumerName string) *RedisStreamConfig {
	return &RedisStreamConfig{
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		Stream:        stream,
		ResultStream:  resultStream,
		Group:         group,
		ConsumerName:  consumerName,
		ResultMaxLen:  10000,
	}
}

func Connect(ctx context.Context, cfg *RedisStreamConfig, logger *zerolog.Logger) (*redis.Client, error) {
	return redisconn.Connect(ctx, redisconn.DefaultConfig(cfg.RedisAddr, cfg.RedisPassword), logger)
}
