package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// InvokeModelAPI is the slice of the Bedrock runtime client the adapter uses.
type InvokeModelAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type Client struct {
	Client  InvokeModelAPI
	ModelID string
}

// NewClient resolves AWS credentials eagerly so a missing credential fails at startup
// rather than on the first evaluation.
func NewClient(ctx context.Context, region string, modelID string) (*Client, error) {
	if modelID == "" {
		return nil, fmt.Errorf("Claude model ID is required")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("Unable to load AWS config: %w", err)
	}

	if cfg.Credentials == nil {
		return nil, fmt.Errorf("No AWS credentials provider configured")
	}
	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return nil, fmt.Errorf("Unable to resolve AWS credentials: %w", err)
	}

	return &Client{
		Client:  bedrockruntime.NewFromConfig(cfg),
		ModelID: modelID,
	}, nil
}
