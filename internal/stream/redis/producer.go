package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	"github.com/redis/go-redis/v9"
)

type Producer struct {
	client *redis.Client
	stream string
}

func NewProducer(client *redis.Client, stream string) *Producer {
	return &Producer{client: client, stream: stream}
}

// Publish enqueues one request and returns the event ID it was sent under.
func (p *Producer) Publish(ctx context.Context, req models.EvaluationRequest) (string, error) {
	envelope := models.EvaluationEnvelope{
		EventID:   uuid.NewString(),
		Request:   req,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{payloadField: string(data)},
	}).Err(); err != nil {
		return "", fmt.Errorf("failed to publish to %s: %w", p.stream, err)
	}
	return envelope.EventID, nil
}
