package prechecks

import (
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/interprep/internal/models"
)

const TranscriptCheckerName = "transcript-checker"

// TranscriptChecker blocks evaluations that carry no spoken explanation at all.
type TranscriptChecker struct {
}

func NewTranscriptChecker() *TranscriptChecker {
	return &TranscriptChecker{}
}

func (c *TranscriptChecker) Check(req models.EvaluationRequest) models.PrecheckResult {
	now := time.Now()
	result := models.PrecheckResult{
		Name:     TranscriptCheckerName,
		Blocking: true,
	}

	if strings.TrimSpace(req.Transcript) == "" {
		result.Reason = "No transcript was provided"
		result.Duration = time.Since(now)
		return result
	}

	result.Passed = true
	result.Reason = "Transcript present"
	result.Duration = time.Since(now)
	return result
}
