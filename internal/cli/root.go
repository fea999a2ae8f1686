package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/interprep/internal/setup"
	applog "github.com/povarna/generative-ai-agents/interprep/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	cfg      *setup.Config
	jsonMode bool
	logger   zerolog.Logger
}

// NewRootCmd builds the interprep command tree. Configuration comes from the
// environment (and .env) like the servers, flags only override it.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "interprep",
		Short:         "interprep - practice coding interviews by explaining solutions out loud",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			a.cfg = setup.LoadConfig()
			if path, _ := cmd.Flags().GetString("problems"); path != "" {
				a.cfg.ProblemsCSVPath = path
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				a.cfg.LogLevel = "debug"
			}
			a.logger = applog.New(a.cfg.LogLevel, "console")
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "print JSON instead of text")
	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	root.PersistentFlags().String("problems", "", "problems CSV file (overrides PROBLEMS_CSV_PATH)")

	root.AddCommand(
		newProblemsCmd(a),
		newLessonsCmd(a),
		newRubricCmd(a),
		newEvaluateCmd(a),
	)
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
