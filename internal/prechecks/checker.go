package prechecks

import (
	"github.com/povarna/generative-ai-agents/interprep/internal/models"
)

type Checker interface {
	Check(req models.EvaluationRequest) models.PrecheckResult
}
