package models

import (
	"time"
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

type PerformanceLevel string

const (
	PerformanceExcellent        PerformanceLevel = "Excellent"
	PerformanceGood             PerformanceLevel = "Good"
	PerformanceSatisfactory     PerformanceLevel = "Satisfactory"
	PerformanceNeedsImprovement PerformanceLevel = "Needs Improvement"
	PerformancePoor             PerformanceLevel = "Poor"
)

// Outcome is the terminal state of one evaluation. It is only used for logs and metrics,
// the serialized result has the same shape for every outcome.
type Outcome string

const (
	OutcomeSuccess          Outcome = "success"
	OutcomeModelUnavailable Outcome = "model_unavailable"
	OutcomeParseFailure     Outcome = "parse_failure"
	OutcomeNoTranscript     Outcome = "no_transcript"
	OutcomeRejected         Outcome = "rejected"
)

const UnknownCategory = "unknown"

// PrecheckResult is the verdict of one cheap local check run before the model is called.
// A failed blocking check stops the evaluation.
type PrecheckResult struct {
	Name     string        `json:"name"`
	Passed   bool          `json:"passed"`
	Blocking bool          `json:"blocking"`
	Reason   string        `json:"reason"`
	Duration time.Duration `json:"duration"`
}

// Input message

type EvaluationRequest struct {
	Transcript string `json:"transcript" jsonschema:"spoken explanation transcript to evaluate"`
	Problem    string `json:"problem,omitempty" jsonschema:"optional problem statement"`
	Code       string `json:"code,omitempty" jsonschema:"optional submitted code"`
}

// EvaluationEnvelope wraps a request travelling through the stream or batch file.
type EvaluationEnvelope struct {
	EventID   string            `json:"event_id"`
	Request   EvaluationRequest `json:"request"`
	CreatedAt time.Time         `json:"created_at,omitempty"`
}

// NormalizedScore carries whichever raw fields applied plus the derived aggregates.
// Fields of the inactive schema are nil and omitted from JSON.
type NormalizedScore struct {
	Schema string `json:"schema"`

	// legacy 1-3 schema
	ProblemID  *int `json:"problem_id,omitempty"`
	Complexity *int `json:"complexity,omitempty"`
	Clarity    *int `json:"clarity,omitempty"`

	// full 10 dimension schema
	PatternRecognition     *int `json:"pattern_recognition,omitempty"`
	ProblemUnderstanding   *int `json:"problem_understanding,omitempty"`
	ApproachSelection      *int `json:"approach_selection,omitempty"`
	TimeComplexity         *int `json:"time_complexity,omitempty"`
	SpaceComplexity        *int `json:"space_complexity,omitempty"`
	CaseAnalysis           *int `json:"case_analysis,omitempty"`
	StructureFlow          *int `json:"structure_flow,omitempty"`
	TechnicalCommunication *int `json:"technical_communication,omitempty"`
	Completeness           *int `json:"completeness,omitempty"`
	BonusPenalty           *int `json:"bonus_penalty,omitempty"`

	TotalRaw         int              `json:"total_raw"`
	FinalScore       int              `json:"final_score"`
	PerformanceLevel PerformanceLevel `json:"performance_level"`
}

// Final output returned to every boundary
type EvaluationResult struct {
	PredictedCategory    string          `json:"predicted_category"`
	Reasoning            string          `json:"reasoning"`
	IsSolutionCorrect    *bool           `json:"is_solution_correct,omitempty"`
	CorrectnessReasoning *string         `json:"correctness_reasoning,omitempty"`
	Confidence           float64         `json:"confidence"`
	Score                NormalizedScore `json:"score"`
	Comments             []string        `json:"comments"`
	OverallLevel         Level           `json:"overall_level"`

	Outcome Outcome `json:"-"`
}

// EvaluationRecord pairs a result with the event it answers (stream and batch output).
type EvaluationRecord struct {
	EventID   string           `json:"event_id"`
	Result    EvaluationResult `json:"result"`
	Outcome   Outcome          `json:"outcome"`
	Duration  time.Duration    `json:"duration_ns"`
	CreatedAt time.Time        `json:"created_at"`
}
