package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	"github.com/rs/zerolog"
)

// maxLineSize bounds one JSONL line. Transcripts of long sessions can exceed bufio's 64KB default.
const maxLineSize = 4 * 1024 * 1024

type InputRecord struct {
	LineNumber int
	Envelope   models.EvaluationEnvelope
	Error      error
}

type Reader struct {
	r      io.Reader
	logger *zerolog.Logger
}

func NewReader(r io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{r: r, logger: logger}
}

// ReadAll streams one record per non-blank line. Lines that fail to decode are
// delivered with Error set so callers can report them by line number.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			record := InputRecord{LineNumber: lineNumber}
			record.Envelope, record.Error = decodeLine(line)
			if record.Error != nil {
				r.logger.Debug().Int("line", lineNumber).Err(record.Error).Msg("Skipping malformed line")
			}

			select {
			case out <- record:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case out <- InputRecord{LineNumber: lineNumber + 1, Error: fmt.Errorf("read input: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	return out
}

func decodeLine(line string) (models.EvaluationEnvelope, error) {
	var envelope models.EvaluationEnvelope
	if err := json.Unmarshal([]byte(line), &envelope); err != nil {
		return envelope, fmt.Errorf("invalid JSON: %w", err)
	}
	if envelope.EventID == "" {
		envelope.EventID = uuid.NewString()
	}
	return envelope, nil
}
