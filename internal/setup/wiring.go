package setup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/povarna/generative-ai-agents/interprep/internal/catalog"
	"github.com/povarna/generative-ai-agents/interprep/internal/config"
	"github.com/povarna/generative-ai-agents/interprep/internal/executor"
	"github.com/povarna/generative-ai-agents/interprep/internal/lessons"
	"github.com/povarna/generative-ai-agents/interprep/internal/llm"
	"github.com/povarna/generative-ai-agents/interprep/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/interprep/internal/llm/openai"
	"github.com/povarna/generative-ai-agents/interprep/internal/prechecks"
	"github.com/povarna/generative-ai-agents/interprep/internal/prompt"
	"github.com/povarna/generative-ai-agents/interprep/internal/recording"
	"github.com/povarna/generative-ai-agents/interprep/internal/rubric"
	"github.com/povarna/generative-ai-agents/interprep/internal/transcription"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Executor *executor.Executor
	Rubric   *rubric.Definition
	Catalog  *catalog.Catalog
	Lessons  *lessons.Library
	// Transcriber is nil when no OpenAI key is configured.
	Transcriber transcription.Transcriber
	Archive     recording.Archive
	Logger      *zerolog.Logger
}

// Wire builds everything once from cfg. It fails when the model credential for the
// selected provider is missing.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	schema, err := rubric.ParseSchema(cfg.RubricSchema)
	if err != nil {
		return nil, err
	}
	def, err := config.LoadRubric(cfg.RubricConfigPath, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to load rubric: %w", err)
	}

	builder, err := prompt.NewBuilder(def)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt builder: %w", err)
	}

	llmClient, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	exec := executor.NewExecutor(
		prechecks.Default(cfg.MaxTranscriptChars),
		builder,
		llmClient,
		def,
		executor.ModelParams{MaxTokens: cfg.MaxTokens, Temperature: cfg.Temperature},
		logger,
	)

	problems, err := catalog.Load(cfg.ProblemsCSVPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load problem catalog: %w", err)
		}
		logger.Warn().Str("path", cfg.ProblemsCSVPath).Msg("problem catalog not found, starting empty")
		problems = catalog.New(nil)
	}

	library, err := lessons.Load()
	if err != nil {
		return nil, err
	}

	archive, err := createArchive(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create recording archive: %w", err)
	}

	deps := &Dependencies{
		Executor: exec,
		Rubric:   def,
		Catalog:  problems,
		Lessons:  library,
		Archive:  archive,
		Logger:   logger,
	}

	if cfg.OpenAIKey != "" {
		whisper, err := transcription.Shared(transcription.Config{
			APIKey:  cfg.OpenAIKey,
			Model:   cfg.TranscriptionModel,
			Timeout: cfg.HTTPTimeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		deps.Transcriber = whisper
	} else {
		logger.Warn().Msg("OPEN_AI_KEY not set, transcription disabled")
	}

	logger.Info().
		Str("provider", cfg.Provider).
		Str("rubricVersion", def.Version()).
		Str("schema", string(def.Schema())).
		Int("problems", problems.Len()).
		Msg("dependencies wired")

	return deps, nil
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.LLMClient, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		return openai.NewClient(openai.Config{
			APIKey:  cfg.OpenAIKey,
			Model:   cfg.OpenAIModelID,
			Timeout: cfg.HTTPTimeout,
		})
	default:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	}
}

func createArchive(ctx context.Context, cfg *Config) (recording.Archive, error) {
	switch {
	case cfg.RecordingsBucket != "":
		return recording.NewS3Archive(ctx, cfg.AWSRegion, cfg.RecordingsBucket)
	case cfg.RecordingsDir != "":
		return recording.NewLocalArchive(cfg.RecordingsDir)
	default:
		return recording.Discard{}, nil
	}
}
