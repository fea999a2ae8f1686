package prechecks

import (
	"sync"

	"github.com/povarna/generative-ai-agents/interprep/internal/models"
)

type Runner struct {
	Checkers []Checker
}

func NewRunner(checkers []Checker) *Runner {
	return &Runner{
		Checkers: checkers,
	}
}

// Default returns the checkers every evaluation goes through.
func Default(maxChars int) *Runner {
	return NewRunner([]Checker{
		NewTranscriptChecker(),
		NewLengthChecker(maxChars),
		NewFormatChecker(),
	})
}

// Run executes all checkers concurrently. Results keep the checker order.
func (r *Runner) Run(req models.EvaluationRequest) []models.PrecheckResult {
	results := make([]models.PrecheckResult, len(r.Checkers))
	var wg sync.WaitGroup

	for i, checker := range r.Checkers {
		wg.Add(1)
		go func(i int, c Checker) {
			defer wg.Done()
			results[i] = c.Check(req)
		}(i, checker)
	}

	wg.Wait()
	return results
}

// FirstBlocking returns the first failed blocking result, in checker order.
func FirstBlocking(results []models.PrecheckResult) (models.PrecheckResult, bool) {
	for _, res := range results {
		if res.Blocking && !res.Passed {
			return res, true
		}
	}
	return models.PrecheckResult{}, false
}
