package batch

import (
	"context"
	"sync"
	"time"

	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	"github.com/rs/zerolog"
)

type Evaluator interface {
	Execute(ctx context.Context, req models.EvaluationRequest) models.EvaluationResult
}

type Processor struct {
	executor Evaluator
	workers  int
	logger   *zerolog.Logger
}

func NewProcessor(exec Evaluator, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{executor: exec, workers: workers, logger: logger}
}

// Process evaluates every well-formed record with a fixed pool of workers.
// Output order is not guaranteed to match input order.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan models.EvaluationRecord {
	jobs := make(chan InputRecord)
	results := make(chan models.EvaluationRecord)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range jobs {
				result := p.evaluate(ctx, record)
				select {
				case results <- result:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, record := range records {
			if record.Error != nil {
				p.logger.Warn().Int("line", record.LineNumber).Err(record.Error).Msg("Skipping invalid record")
				continue
			}
			select {
			case jobs <- record:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func (p *Processor) evaluate(ctx context.Context, record InputRecord) models.EvaluationRecord {
	start := time.Now()
	result := p.executor.Execute(ctx, record.Envelope.Request)

	p.logger.Debug().
		Str("event_id", record.Envelope.EventID).
		Str("outcome", string(result.Outcome)).
		Msg("Record evaluated")

	return models.EvaluationRecord{
		EventID:   record.Envelope.EventID,
		Result:    result,
		Outcome:   result.Outcome,
		Duration:  time.Since(start),
		CreatedAt: time.Now().UTC(),
	}
}
