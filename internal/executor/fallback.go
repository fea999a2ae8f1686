package executor

import (
	"regexp"
	"strings"

	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	"github.com/povarna/generative-ai-agents/interprep/internal/prechecks"
	"github.com/povarna/generative-ai-agents/interprep/internal/scoring"
)

const (
	modelUnavailableReasoning = "The evaluation could not be completed because the analysis model is unavailable."
	modelUnavailableComment   = "The system could not contact the analysis model. Check your API key / quota and try again."

	parseFailureReasoning = "The analysis model answered, but its output could not be parsed into an evaluation."

	noTranscriptReasoning = "No transcript was provided, so there is no explanation to evaluate."
	noTranscriptComment   = "Record or paste your spoken explanation before requesting an evaluation."
)

var parseFailureComments = []string{
	"State the problem you are solving in your own words before describing the solution.",
	"Walk through your approach step by step and name the data structures you use.",
	"State the time and space complexity of your solution explicitly.",
}

// fallback is the shared shape of every result that did not come from the model.
func (e *Executor) fallback(outcome models.Outcome, reasoning string, comments []string) models.EvaluationResult {
	return models.EvaluationResult{
		PredictedCategory: models.UnknownCategory,
		Reasoning:         reasoning,
		Confidence:        0,
		Score:             scoring.Default(e.rubric.Schema()),
		Comments:          append([]string(nil), comments...),
		OverallLevel:      models.LevelBeginner,
		Outcome:           outcome,
	}
}

func (e *Executor) modelUnavailable(err error) models.EvaluationResult {
	reasoning := modelUnavailableReasoning
	if summary := errorSummary(err); summary != "" {
		reasoning += " Error: " + summary
	}
	return e.fallback(models.OutcomeModelUnavailable, reasoning, []string{modelUnavailableComment})
}

const maxErrorSummary = 160

var secretPattern = regexp.MustCompile(`(?i)(sk-[A-Za-z0-9_-]{6,}|AKIA[0-9A-Z]{12,}|bearer\s+\S+)`)

// errorSummary is the first line of err with credentials masked, cut to maxErrorSummary runes.
func errorSummary(err error) string {
	if err == nil {
		return ""
	}
	msg, _, _ := strings.Cut(err.Error(), "\n")
	msg = secretPattern.ReplaceAllString(strings.TrimSpace(msg), "[redacted]")
	if runes := []rune(msg); len(runes) > maxErrorSummary {
		msg = string(runes[:maxErrorSummary]) + "..."
	}
	return msg
}

func (e *Executor) parseFailure() models.EvaluationResult {
	return e.fallback(models.OutcomeParseFailure, parseFailureReasoning, parseFailureComments)
}

func (e *Executor) rejected(check models.PrecheckResult) models.EvaluationResult {
	if check.Name == prechecks.TranscriptCheckerName {
		return e.fallback(models.OutcomeNoTranscript, noTranscriptReasoning, []string{noTranscriptComment})
	}
	return e.fallback(models.OutcomeRejected, check.Reason+".", []string{"Shorten the explanation and try again."})
}
