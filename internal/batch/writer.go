package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Summary aggregates a batch run.
type Summary struct {
	Total             int                             `json:"total"`
	Outcomes          map[models.Outcome]int          `json:"outcomes"`
	PerformanceLevels map[models.PerformanceLevel]int `json:"performance_levels"`
	Categories        map[string]int                  `json:"categories"`
	AverageScore      float64                         `json:"average_final_score"`

	scoreSum int
}

func NewSummary() *Summary {
	return &Summary{
		Outcomes:          map[models.Outcome]int{},
		PerformanceLevels: map[models.PerformanceLevel]int{},
		Categories:        map[string]int{},
	}
}

func (s *Summary) Add(record models.EvaluationRecord) {
	s.Total++
	s.Outcomes[record.Outcome]++
	s.PerformanceLevels[record.Result.Score.PerformanceLevel]++
	s.Categories[record.Result.PredictedCategory]++
	s.scoreSum += record.Result.Score.FinalScore
	s.AverageScore = float64(s.scoreSum) / float64(s.Total)
}

type Writer struct {
	w       io.Writer
	format  string
	encoder *json.Encoder
	summary *Summary
	logger  *zerolog.Logger
}

func NewWriter(w io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	switch format {
	case FormatJSONL, FormatSummary:
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return &Writer{
		w:       w,
		format:  format,
		encoder: json.NewEncoder(w),
		summary: NewSummary(),
		logger:  logger,
	}, nil
}

func (w *Writer) Write(record models.EvaluationRecord) error {
	w.summary.Add(record)
	if w.format != FormatJSONL {
		return nil
	}
	return w.encoder.Encode(record)
}

func (w *Writer) Summary() *Summary {
	return w.summary
}

// Close flushes the summary when the writer was created in summary format.
func (w *Writer) Close() error {
	if w.format != FormatSummary {
		return nil
	}
	w.encoder.SetIndent("", "  ")
	if err := w.encoder.Encode(w.summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	w.logger.Debug().Int("total", w.summary.Total).Msg("Summary written")
	return nil
}
