package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	payloadField = "payload"

	readErrorBackoff = time.Second
	pendingBatch     = 10
)

type Evaluator interface {
	Execute(ctx context.Context, req models.EvaluationRequest) models.EvaluationResult
}

type Consumer struct {
	client       *redis.Client
	stream       string
	resultStream string
	resultMaxLen int64
	groupID      string
	consumerName string
	executor     Evaluator
	retryDelay   time.Duration
	logger       *zerolog.Logger
}

func NewConsumer(client *redis.Client, cfg *RedisStreamConfig, exec Evaluator, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:       client,
		stream:       cfg.Stream,
		resultStream: cfg.ResultStream,
		resultMaxLen: cfg.ResultMaxLen,
		groupID:      cfg.Group,
		consumerName: cfg.ConsumerName,
		executor:     exec,
		retryDelay:   readErrorBackoff,
		logger:       logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

// Start processes one message at a time until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	if err := c.drainPending(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.Error().Err(err).Msg("Failed to read pending messages")
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}

			c.logger.Error().Err(err).Dur("retry_in", c.retryDelay).Msg("Failed to read from stream")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay):
			}
			continue
		}

		for _, msg := range msgs[0].Messages {
			c.process(ctx, msg)
		}
	}
}

// drainPending re-processes messages delivered to this consumer name but never
// acked, e.g. after a crash between evaluation and ack.
func (c *Consumer) drainPending(ctx context.Context) error {
	cursor := "0"
	for {
		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, cursor},
			Count:    pendingBatch,
			Block:    -1,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			return err
		}
		if len(msgs) == 0 || len(msgs[0].Messages) == 0 {
			return nil
		}

		c.logger.Info().Int("count", len(msgs[0].Messages)).Msg("Recovering pending messages")
		for _, msg := range msgs[0].Messages {
			c.process(ctx, msg)
			// entries that stay pending are not re-read in this pass
			cursor = msg.ID
		}
	}
}

func (c *Consumer) Stop() error {
	return c.client.Close()
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	payload, ok := msg.Values[payloadField].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.ack(ctx, msg.ID)
		return
	}

	var envelope models.EvaluationEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, ACK to skip it
		return
	}
	if envelope.EventID == "" {
		envelope.EventID = uuid.NewString()
	}

	start := time.Now()
	result := c.executor.Execute(ctx, envelope.Request)

	record := models.EvaluationRecord{
		EventID:   envelope.EventID,
		Result:    result,
		Outcome:   result.Outcome,
		Duration:  time.Since(start),
		CreatedAt: time.Now().UTC(),
	}

	c.logger.Info().
		Str("id", msg.ID).
		Str("event_id", record.EventID).
		Str("outcome", string(record.Outcome)).
		Int("final_score", result.Score.FinalScore).
		Msg("Evaluation complete")

	if err := c.publish(ctx, record); err != nil {
		// leave the message pending so it can be claimed and retried
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to publish result")
		return
	}
	c.ack(ctx, msg.ID)
}

func (c *Consumer) publish(ctx context.Context, record models.EvaluationRecord) error {
	if c.resultStream == "" {
		return nil
	}
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.resultStream,
		MaxLen: c.resultMaxLen,
		Approx: c.resultMaxLen > 0,
		Values: map[string]any{
			"event_id":   record.EventID,
			payloadField: string(data),
		},
	}).Err()
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
