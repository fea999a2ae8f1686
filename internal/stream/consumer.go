package stream

import "context"

// StreamConsumer reads evaluation requests from a queue until ctx is done.
type StreamConsumer interface {
	Setup(ctx context.Context) error
	Start(ctx context.Context) error
	Stop() error
}
