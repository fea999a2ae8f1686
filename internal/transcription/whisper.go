package transcription

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/povarna/generative-ai-agents/interprep/internal/metrics"
	"github.com/rs/zerolog"
	goopenai "github.com/sashabaranov/go-openai"
)

const DefaultModel = goopenai.Whisper1

// AudioAPI is the part of the OpenAI client used for speech to text.
type AudioAPI interface {
	CreateTranscription(ctx context.Context, request goopenai.AudioRequest) (goopenai.AudioResponse, error)
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type Whisper struct {
	client AudioAPI
	model  string
	logger *zerolog.Logger
}

func NewWhisper(client AudioAPI, model string, logger *zerolog.Logger) *Whisper {
	if model == "" {
		model = DefaultModel
	}
	return &Whisper{
		client: client,
		model:  model,
		logger: logger,
	}
}

func (w *Whisper) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	mtype, err := CheckMedia(audio)
	if err != nil {
		metrics.Transcriptions.WithLabelValues("rejected").Inc()
		return "", err
	}

	now := time.Now()
	resp, err := w.client.CreateTranscription(ctx, goopenai.AudioRequest{
		Model:    w.model,
		FilePath: filename,
		Reader:   bytes.NewReader(audio),
		Format:   goopenai.AudioResponseFormatJSON,
	})
	if err != nil {
		metrics.Transcriptions.WithLabelValues("error").Inc()
		w.logger.Error().Err(err).Str("file", filename).Msg("transcription failed")
		return "", fmt.Errorf("transcription request failed: %w", err)
	}

	metrics.Transcriptions.WithLabelValues("ok").Inc()
	w.logger.Info().
		Str("file", filename).
		Str("mime", mtype.String()).
		Int("bytes", len(audio)).
		Dur("duration", time.Since(now)).
		Msg("transcription complete")

	return strings.TrimSpace(resp.Text), nil
}

var (
	sharedOnce sync.Once
	shared     *Whisper
	sharedErr  error
)

// Shared returns the process-wide Whisper transcriber, creating it on first use.
// Later calls ignore cfg.
func Shared(cfg Config, logger *zerolog.Logger) (*Whisper, error) {
	sharedOnce.Do(func() {
		if cfg.APIKey == "" {
			sharedErr = fmt.Errorf("OpenAI API key is required for transcription")
			return
		}
		clientCfg := goopenai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
		shared = NewWhisper(goopenai.NewClientWithConfig(clientCfg), cfg.Model, logger)
	})
	return shared, sharedErr
}
