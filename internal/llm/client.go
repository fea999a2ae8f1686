package llm

import (
	"context"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

// LLMClient is the adapter to an external generative model. One call is one attempt;
// implementations never retry, and any transport, quota or model error comes back as err.
type LLMClient interface {
	InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error)
}
