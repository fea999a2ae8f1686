package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/interprep/internal/batch"
	"github.com/povarna/generative-ai-agents/interprep/internal/setup"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	startTime := time.Now()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	input := flag.String("input", "", "Input JSONL file, '-' for stdin")
	output := flag.String("output", "", "Output file, stdout when empty")
	format := flag.String("format", batch.FormatJSONL, "Output format. Supported formats: 'jsonl', 'summary'")
	workers := flag.Int("workers", 3, "Concurrent evaluation workers")
	continueOnError := flag.Bool("continue-on-error", true, "Continue on write failures")
	dryRun := flag.Bool("dry-run", false, "Validate input without evaluating")

	flag.Parse()

	if *input == "" {
		log.Fatal().Msg("required flag -input not provided")
	}
	if *format != batch.FormatJSONL && *format != batch.FormatSummary {
		log.Fatal().Str("format", *format).Msg("Invalid format. Supported: jsonl, summary")
	}

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Open input file
	var inputFile io.Reader
	if *input == "-" {
		inputFile = os.Stdin
		log.Info().Msg("Reading from stdin")
	} else {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatal().Err(err).Str("file", *input).Msg("Failed to open input file")
		}
		defer f.Close()
		inputFile = f
		log.Info().Str("file", *input).Msg("Reading input file")
	}

	// Read records
	reader := batch.NewReader(inputFile, &log.Logger)
	var records []batch.InputRecord
	for record := range reader.ReadAll(ctx) {
		records = append(records, record)
	}

	log.Info().Int("total", len(records)).Msg("Input file parsed")

	if *dryRun {
		dryRunAndExit(records)
	}

	cfg := setup.LoadConfig()
	deps, err := setup.Wire(ctx, cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	// Open output file
	var outputFile io.Writer
	if *output == "" {
		outputFile = os.Stdout
		log.Info().Msg("Writing to stdout")
	} else {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal().Err(err).Str("file", *output).Msg("Failed to create output file")
		}
		defer f.Close()
		outputFile = f
		log.Info().Str("file", *output).Msg("Writing to output file")
	}

	writer, err := batch.NewWriter(outputFile, *format, deps.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create writer")
	}

	processor := batch.NewProcessor(deps.Executor, *workers, deps.Logger)

	successCount := 0
	errorCount := 0
	for result := range processor.Process(ctx, records) {
		if err := writer.Write(result); err != nil {
			log.Error().Err(err).Str("event_id", result.EventID).Msg("Failed to write result")
			errorCount++

			if !*continueOnError {
				log.Fatal().Msg("Stopping due to write error")
			}
			continue
		}
		successCount++
	}

	if err := writer.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to finish output")
	}

	summary := writer.Summary()
	log.Info().
		Int("success", successCount).
		Int("errors", errorCount).
		Float64("average_final_score", summary.AverageScore).
		Dur("duration", time.Since(startTime)).
		Msg("Batch processing complete")
}

func dryRunAndExit(records []batch.InputRecord) {
	errorCount := 0
	for _, record := range records {
		if record.Error != nil {
			log.Error().
				Int("line", record.LineNumber).
				Err(record.Error).
				Msg("Validation error")
			errorCount++
		}
	}

	if errorCount > 0 {
		log.Fatal().Int("errors", errorCount).Msg("Validation failed")
	}

	log.Info().Msg("Validation successful")
	os.Exit(0)
}
