package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type Config struct {
	Addr        string
	Password    string
	DB          int
	MaxAttempts int
	// Backoff is the wait before the second attempt; it doubles on every further attempt.
	Backoff time.Duration
}

func DefaultConfig(addr, password string) Config {
	return Config{
		Addr:        addr,
		Password:    password,
		MaxAttempts: 5,
		Backoff:     2 * time.Second,
	}
}

// Connect pings Redis until it answers or the attempts are used up.
func Connect(ctx context.Context, cfg Config, logger *zerolog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            cfg.Addr,
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	})

	attempts := max(cfg.MaxAttempts, 1)
	backoff := cfg.Backoff

	var err error
	for i := range attempts {
		if i > 0 {
			logger.Info().Dur("backoff", backoff).Msg("Waiting before Redis retry")
			select {
			case <-ctx.Done():
				client.Close()
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		err = client.Ping(ctx).Err()
		if err == nil {
			logger.Info().Str("addr", cfg.Addr).Int("attempts_needed", i+1).Msg("Redis connected")
			return client, nil
		}

		logger.Warn().Err(err).Int("attempt", i+1).Int("max_attempts", attempts).Msg("Redis ping failed")
	}

	client.Close()
	return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", attempts, err)
}
