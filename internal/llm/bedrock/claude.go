package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/povarna/generative-ai-agents/interprep/internal/llm"
)

type claudeMessageRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeMessageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

var anthropicVersion = "bedrock-2023-05-31"

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	payload := claudeMessageRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        request.MaxTokens,
		Temperature:      request.Temperature,
		Messages: []claudeMessage{
			{
				Role:    "user",
				Content: request.Prompt,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("Unable to serialize claude request. Error: %w", err)
	}

	output, err := c.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.ModelID),
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("Unable to invoke claude model. Error: %w", err)
	}

	var response claudeMessageResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("Failed to unmarshal bedrock response. Error: %w", err)
	}

	// Concatenate the text blocks
	var sb strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return &llm.LLMResponse{
		Content:    sb.String(),
		StopReason: response.StopReason,
	}, nil
}
