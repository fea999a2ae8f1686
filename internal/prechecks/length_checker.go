package prechecks

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/interprep/internal/models"
)

const LengthCheckerName = "length-checker"

type LengthChecker struct {
	MaxChars int
}

// NewLengthChecker caps the transcript size in characters. A non-positive cap disables the check.
func NewLengthChecker(maxChars int) *LengthChecker {
	return &LengthChecker{MaxChars: maxChars}
}

func (c *LengthChecker) Check(req models.EvaluationRequest) models.PrecheckResult {
	now := time.Now()
	result := models.PrecheckResult{
		Name:     LengthCheckerName,
		Blocking: true,
	}

	length := utf8.RuneCountInString(req.Transcript)
	if c.MaxChars > 0 && length > c.MaxChars {
		result.Reason = fmt.Sprintf("The transcript has %d characters, the limit is %d", length, c.MaxChars)
		result.Duration = time.Since(now)
		return result
	}

	result.Passed = true
	result.Reason = "Transcript length is acceptable"
	result.Duration = time.Since(now)
	return result
}
