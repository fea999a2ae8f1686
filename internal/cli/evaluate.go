package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	"github.com/povarna/generative-ai-agents/interprep/internal/setup"
	"github.com/povarna/generative-ai-agents/interprep/internal/transcription"
	"github.com/spf13/cobra"
)

func newEvaluateCmd(a *app) *cobra.Command {
	var (
		transcriptFile string
		audioFile      string
		codeFile       string
		problem        string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score one explanation from a transcript or an audio recording",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (transcriptFile == "") == (audioFile == "") {
				return errors.New("exactly one of --transcript or --audio is required")
			}

			deps, err := setup.Wire(cmd.Context(), a.cfg, &a.logger)
			if err != nil {
				return err
			}

			req := models.EvaluationRequest{Problem: problem}
			if transcriptFile != "" {
				data, err := os.ReadFile(transcriptFile)
				if err != nil {
					return err
				}
				req.Transcript = string(data)
			} else {
				if deps.Transcriber == nil {
					return errors.New("transcription is disabled, set OPEN_AI_KEY")
				}
				req.Transcript, err = transcription.TranscribeFile(cmd.Context(), deps.Transcriber, audioFile)
				if err != nil {
					return err
				}
			}
			if codeFile != "" {
				data, err := os.ReadFile(codeFile)
				if err != nil {
					return err
				}
				req.Code = string(data)
			}

			result := deps.Executor.Execute(cmd.Context(), req)
			if a.jsonMode {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return printResult(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&transcriptFile, "transcript", "t", "", "text file with the spoken explanation")
	cmd.Flags().StringVarP(&audioFile, "audio", "a", "", "audio recording to transcribe first")
	cmd.Flags().StringVar(&codeFile, "code", "", "file with the submitted code")
	cmd.Flags().StringVarP(&problem, "question", "q", "", "problem statement")
	return cmd
}

func printResult(cmd *cobra.Command, r models.EvaluationResult) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "category:  %s (confidence %.2f)\n", r.PredictedCategory, r.Confidence)
	fmt.Fprintf(out, "score:     %d/100 %s (raw %d)\n", r.Score.FinalScore, r.Score.PerformanceLevel, r.Score.TotalRaw)
	fmt.Fprintf(out, "level:     %s\n", r.OverallLevel)
	if r.IsSolutionCorrect != nil {
		fmt.Fprintf(out, "correct:   %t\n", *r.IsSolutionCorrect)
	}
	fmt.Fprintf(out, "\n%s\n", r.Reasoning)
	if len(r.Comments) > 0 {
		fmt.Fprintf(out, "\n- %s\n", strings.Join(r.Comments, "\n- "))
	}
	return nil
}
