package prechecks

import (
	"regexp"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/interprep/internal/models"
)

const FormatCheckerName = "format-checker"

// FormatChecker flags transcripts that look like speech-to-text noise. It never blocks,
// the model still gets to judge a short or noisy explanation.
type FormatChecker struct {
}

func NewFormatChecker() *FormatChecker {
	return &FormatChecker{}
}

var repeatedPunctuation = regexp.MustCompile(`[!?.]{3,}`)

func (c *FormatChecker) Check(req models.EvaluationRequest) models.PrecheckResult {
	now := time.Now()
	result := models.PrecheckResult{
		Name: FormatCheckerName,
	}

	transcript := strings.TrimSpace(req.Transcript)

	if len(strings.Fields(transcript)) < 3 {
		result.Reason = "Transcript is very short"
		result.Duration = time.Since(now)
		return result
	}

	if repeatedPunctuation.MatchString(transcript) {
		result.Reason = "Transcript contains repeated punctuation"
		result.Duration = time.Since(now)
		return result
	}

	result.Passed = true
	result.Reason = "Valid transcript"
	result.Duration = time.Since(now)
	return result
}
