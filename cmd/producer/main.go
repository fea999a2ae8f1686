package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	red "github.com/povarna/generative-ai-agents/interprep/internal/redis"
	"github.com/povarna/generative-ai-agents/interprep/internal/setup"
	"github.com/povarna/generative-ai-agents/interprep/internal/stream"
	streamredis "github.com/povarna/generative-ai-agents/interprep/internal/stream/redis"
	"github.com/povarna/generative-ai-agents/interprep/internal/transcription"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	data    string
	audio   string
	problem string
	stream  string
}

func main() {
	var opts options
	flag.StringVar(&opts.data, "d", "", "Inline JSON EvaluationRequest")
	flag.StringVar(&opts.audio, "audio", "", "Audio recording to transcribe and submit instead of -d")
	flag.StringVar(&opts.problem, "problem", "", "Problem statement sent with -audio")
	flag.StringVar(&opts.stream, "stream", stream.DefaultRequestStream, "Stream name")
	flag.Parse()

	if opts.data == "" && opts.audio == "" {
		fmt.Fprintln(os.Stderr, "Usage: producer -d '<json>' | -audio <file> [-problem <text>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(opts); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func run(opts options) error {
	_ = godotenv.Load()
	cfg := setup.LoadConfig()
	logger := log.Logger

	ctx := context.Background()

	req, err := buildRequest(ctx, opts, cfg, &logger)
	if err != nil {
		return err
	}

	redisCfg := red.DefaultConfig(cfg.RedisAddr, cfg.RedisPassword)
	redisCfg.MaxAttempts = 3
	client, err := red.Connect(ctx, redisCfg, &logger)
	if err != nil {
		return err
	}
	defer client.Close()

	eventID, err := streamredis.NewProducer(client, opts.stream).Publish(ctx, req)
	if err != nil {
		return err
	}

	log.Info().Str("stream", opts.stream).Str("event_id", eventID).Msg("Published successfully!")
	return nil
}

func buildRequest(ctx context.Context, opts options, cfg *setup.Config, logger *zerolog.Logger) (models.EvaluationRequest, error) {
	var req models.EvaluationRequest
	if opts.data != "" {
		if err := json.Unmarshal([]byte(opts.data), &req); err != nil {
			return req, fmt.Errorf("invalid request JSON: %w", err)
		}
		return req, nil
	}

	if cfg.OpenAIKey == "" {
		return req, errors.New("OPEN_AI_KEY is required to transcribe audio")
	}
	whisper, err := transcription.Shared(transcription.Config{
		APIKey:  cfg.OpenAIKey,
		Model:   cfg.TranscriptionModel,
		Timeout: cfg.HTTPTimeout,
	}, logger)
	if err != nil {
		return req, err
	}

	transcript, err := transcription.TranscribeFile(ctx, whisper, opts.audio)
	if err != nil {
		return req, err
	}
	logger.Info().Int("chars", len(transcript)).Msg("Recording transcribed")

	req.Transcript = transcript
	req.Problem = opts.problem
	return req, nil
}
