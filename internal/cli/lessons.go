package cli

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/interprep/internal/lessons"
	"github.com/spf13/cobra"
)

func newLessonsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lessons [category]",
		Short: "Show the study plan for a category, or list the categories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			library, err := lessons.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				if a.jsonMode {
					return writeJSON(out, library.Categories())
				}
				_, err := fmt.Fprintln(out, strings.Join(library.Categories(), "\n"))
				return err
			}

			plan, ok := library.Get(args[0])
			if !ok {
				return fmt.Errorf("no lesson plan for category %q", args[0])
			}
			if a.jsonMode {
				return writeJSON(out, plan)
			}
			_, err = fmt.Fprint(out, plan.Markdown())
			return err
		},
	}
}
