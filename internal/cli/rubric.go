package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/povarna/generative-ai-agents/interprep/internal/config"
	"github.com/povarna/generative-ai-agents/interprep/internal/rubric"
	"github.com/spf13/cobra"
)

type rubricView struct {
	Version    string         `json:"version"`
	Schema     string         `json:"schema"`
	MaxRaw     int            `json:"max_raw"`
	Fields     []rubric.Field `json:"fields"`
	Categories []string       `json:"categories"`
}

func newRubricCmd(a *app) *cobra.Command {
	var showText bool

	cmd := &cobra.Command{
		Use:   "rubric",
		Short: "Show the active scoring rubric",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := rubric.ParseSchema(a.cfg.RubricSchema)
			if err != nil {
				return err
			}
			def, err := config.LoadRubric(a.cfg.RubricConfigPath, schema)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if showText {
				_, err := fmt.Fprintln(out, def.Text())
				return err
			}
			if a.jsonMode {
				return writeJSON(out, rubricView{
					Version:    def.Version(),
					Schema:     string(def.Schema()),
					MaxRaw:     def.MaxRaw(),
					Fields:     def.Fields(),
					Categories: def.Categories(),
				})
			}

			fmt.Fprintf(out, "rubric %s (%s schema, max raw %d)\n\n", def.Version(), def.Schema(), def.MaxRaw())
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FIELD\tMIN\tMAX\tDEFAULT")
			for _, f := range def.Fields() {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", f.Name, f.Min, f.Max, f.Default)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&showText, "text", false, "print the rubric text sent to the model")
	return cmd
}
