package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/interprep/internal/extract"
	"github.com/povarna/generative-ai-agents/interprep/internal/llm"
	"github.com/povarna/generative-ai-agents/interprep/internal/metrics"
	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	"github.com/povarna/generative-ai-agents/interprep/internal/prechecks"
	"github.com/povarna/generative-ai-agents/interprep/internal/rubric"
	"github.com/povarna/generative-ai-agents/interprep/internal/scoring"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks

// PrecheckRunner runs the local checks on a request before any model call
type PrecheckRunner interface {
	Run(req models.EvaluationRequest) []models.PrecheckResult
}

// PromptBuilder renders the model prompt for a request
type PromptBuilder interface {
	Build(req models.EvaluationRequest) (string, error)
}

type ModelParams struct {
	MaxTokens   int
	Temperature float64
}

const previewLength = 200

type Executor struct {
	prechecks PrecheckRunner
	builder   PromptBuilder
	llmClient llm.LLMClient
	rubric    *rubric.Definition
	params    ModelParams
	logger    *zerolog.Logger
	tracer    trace.Tracer
}

func NewExecutor(
	prechecks PrecheckRunner,
	builder PromptBuilder,
	llmClient llm.LLMClient,
	def *rubric.Definition,
	params ModelParams,
	logger *zerolog.Logger,
) *Executor {
	return &Executor{
		prechecks: prechecks,
		builder:   builder,
		llmClient: llmClient,
		rubric:    def,
		params:    params,
		logger:    logger,
		tracer:    otel.Tracer("github.com/povarna/generative-ai-agents/interprep/internal/executor"),
	}
}

// Execute evaluates one transcript. Every failure is folded into the returned result,
// callers never need a separate error path.
func (e *Executor) Execute(ctx context.Context, req models.EvaluationRequest) (result models.EvaluationResult) {
	ctx, span := e.tracer.Start(ctx, "executor.evaluate")
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Msg("evaluation panicked")
			result = e.modelUnavailable(fmt.Errorf("panic: %v", r))
		}
		metrics.EvaluationOutcomes.WithLabelValues(string(result.Outcome)).Inc()
		if result.Outcome == models.OutcomeSuccess {
			metrics.FinalScores.Observe(float64(result.Score.FinalScore))
		}
		span.SetAttributes(
			attribute.String("evaluation.outcome", string(result.Outcome)),
			attribute.String("evaluation.category", result.PredictedCategory),
		)
		span.End()

		e.logger.Info().
			Str("outcome", string(result.Outcome)).
			Str("category", result.PredictedCategory).
			Int("finalScore", result.Score.FinalScore).
			Dur("duration", time.Since(start)).
			Msg("evaluation complete")
	}()

	e.logger.Info().Int("transcriptChars", len(req.Transcript)).Msg("starting evaluation")

	checks := e.prechecks.Run(req)
	for _, check := range checks {
		if !check.Passed && !check.Blocking {
			e.logger.Warn().Str("check", check.Name).Str("reason", check.Reason).Msg("precheck warning")
		}
	}
	if blocker, blocked := prechecks.FirstBlocking(checks); blocked {
		e.logger.Info().Str("check", blocker.Name).Str("reason", blocker.Reason).Msg("evaluation stopped by precheck")
		return e.rejected(blocker)
	}

	prompt, err := e.builder.Build(req)
	if err != nil {
		e.logger.Error().Err(err).Msg("failed to build prompt")
		return e.modelUnavailable(err)
	}

	raw, err := e.invoke(ctx, prompt)
	if err != nil {
		e.logger.Error().Err(err).Msg("model invocation failed")
		return e.modelUnavailable(err)
	}

	payload, ok := extract.JSONObject(raw)
	if !ok {
		e.logger.Warn().Str("preview", preview(raw)).Msg("could not parse model output")
		return e.parseFailure()
	}

	violations := extract.ShapeViolations(payload)
	span.SetAttributes(attribute.Int("evaluation.shape_violations", len(violations)))
	if len(violations) > 0 {
		metrics.ShapeViolations.Add(float64(len(violations)))
		e.logger.Debug().Strs("violations", violations).Msg("model output deviates from the expected shape")
	}

	return e.assemble(payload)
}

func (e *Executor) invoke(ctx context.Context, prompt string) (string, error) {
	ctx, span := e.tracer.Start(ctx, "executor.invoke_model")
	defer span.End()

	now := time.Now()
	resp, err := e.llmClient.InvokeModel(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   e.params.MaxTokens,
		Temperature: e.params.Temperature,
	})
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.ModelDuration.WithLabelValues(status).Observe(time.Since(now).Seconds())

	if err != nil {
		span.RecordError(err)
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("model returned no response")
	}
	return resp.Content, nil
}

func (e *Executor) assemble(payload map[string]any) models.EvaluationResult {
	scoreRaw, _ := payload["score"].(map[string]any)
	if scoreRaw == nil {
		scoreRaw = map[string]any{}
	}

	result := models.EvaluationResult{
		PredictedCategory:    e.category(payload["predicted_category"]),
		Reasoning:            toString(payload["reasoning"]),
		IsSolutionCorrect:    toBoolPtr(payload["is_solution_correct"]),
		CorrectnessReasoning: toStringPtr(payload["correctness_reasoning"]),
		Confidence:           toConfidence(payload["confidence"]),
		Score:                scoring.NormalizeOr(scoreRaw, e.rubric.Schema()),
		Comments:             toComments(payload["comments"]),
		OverallLevel:         toLevel(payload["overall_level"]),
		Outcome:              models.OutcomeSuccess,
	}
	return result
}

func (e *Executor) category(v any) string {
	category := normalizeLabel(toString(v))
	if !e.rubric.HasCategory(category) {
		if category != "" {
			e.logger.Debug().Str("category", category).Msg("category outside the rubric")
		}
		return models.UnknownCategory
	}
	return category
}

func preview(raw string) string {
	runes := []rune(raw)
	if len(runes) <= previewLength {
		return raw
	}
	return string(runes[:previewLength]) + "..."
}
