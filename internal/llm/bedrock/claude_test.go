package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/povarna/generative-ai-agents/interprep/internal/llm"
)

type fakeRuntime struct {
	output  *bedrockruntime.InvokeModelOutput
	err     error
	lastReq *bedrockruntime.InvokeModelInput
}

func (f *fakeRuntime) InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.lastReq = params
	return f.output, f.err
}

func TestInvokeModel_Success(t *testing.T) {
	runtime := &fakeRuntime{
		output: &bedrockruntime.InvokeModelOutput{
			Body: []byte(`{"content":[{"type":"text","text":"{\"a\":"},{"type":"text","text":"1}"}],"stop_reason":"end_turn"}`),
		},
	}
	client := &Client{Client: runtime, ModelID: "anthropic.claude-3-haiku"}

	resp, err := client.InvokeModel(context.Background(), llm.LLMRequest{Prompt: "hi", MaxTokens: 64, Temperature: 0})
	if err != nil {
		t.Fatalf("InvokeModel failed: %v", err)
	}

	if resp.Content != `{"a":1}` {
		t.Errorf("expected concatenated text, got %q", resp.Content)
	}
	if resp.StopReason != "end_turn" {
		t.Errorf("expected stop reason end_turn, got %q", resp.StopReason)
	}

	var sent claudeMessageRequest
	if err := json.Unmarshal(runtime.lastReq.Body, &sent); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if sent.AnthropicVersion != anthropicVersion || sent.MaxTokens != 64 {
		t.Errorf("unexpected request payload: %+v", sent)
	}
	if len(sent.Messages) != 1 || sent.Messages[0].Content != "hi" || sent.Messages[0].Role != "user" {
		t.Errorf("unexpected messages: %+v", sent.Messages)
	}
	if *runtime.lastReq.ModelId != "anthropic.claude-3-haiku" {
		t.Errorf("unexpected model id %s", *runtime.lastReq.ModelId)
	}
}

func TestInvokeModel_TransportError(t *testing.T) {
	client := &Client{Client: &fakeRuntime{err: errors.New("ThrottlingException")}, ModelID: "m"}

	resp, err := client.InvokeModel(context.Background(), llm.LLMRequest{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if resp != nil {
		t.Errorf("expected nil response, got %+v", resp)
	}
}

func TestInvokeModel_BadBody(t *testing.T) {
	client := &Client{Client: &fakeRuntime{output: &bedrockruntime.InvokeModelOutput{Body: []byte("not json")}}, ModelID: "m"}

	if _, err := client.InvokeModel(context.Background(), llm.LLMRequest{Prompt: "hi"}); err == nil {
		t.Fatal("expected an unmarshal error")
	}
}
