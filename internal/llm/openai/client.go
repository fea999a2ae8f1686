package openai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/povarna/generative-ai-agents/interprep/internal/llm"
	goopenai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	// Timeout bounds the HTTP transport. Zero leaves the transport without a deadline.
	Timeout time.Duration
}

type Client struct {
	client *goopenai.Client
	model  string
	tracer trace.Tracer
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("OpenAI model ID is required")
	}

	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		client: goopenai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		tracer: otel.Tracer("github.com/povarna/generative-ai-agents/interprep/internal/llm/openai"),
	}, nil
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	ctx, span := c.tracer.Start(ctx, "openai.chat_completion", trace.WithAttributes(
		attribute.String("model", c.model),
	))
	defer span.End()

	output, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   request.MaxTokens,
		Temperature: float32(request.Temperature),
		Messages: []goopenai.ChatCompletionMessage{
			{
				Role:    goopenai.ChatMessageRoleUser,
				Content: request.Prompt,
			},
		},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("unable to invoke gpt model. Error: %w", err)
	}

	if len(output.Choices) == 0 {
		err := fmt.Errorf("no choices in response")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	choice := output.Choices[0]
	return &llm.LLMResponse{
		Content:    choice.Message.Content,
		StopReason: string(choice.FinishReason),
	}, nil
}
