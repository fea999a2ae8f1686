package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/povarna/generative-ai-agents/interprep/internal/catalog"
	"github.com/spf13/cobra"
)

func newProblemsCmd(a *app) *cobra.Command {
	var filter catalog.Filter

	cmd := &cobra.Command{
		Use:   "problems",
		Short: "Browse the practice problem catalog",
	}
	cmd.PersistentFlags().StringSliceVar(&filter.Difficulties, "difficulty", nil, "only these difficulties (easy, medium, hard)")
	cmd.PersistentFlags().StringSliceVar(&filter.Algorithms, "algorithm", nil, "only problems tagged with one of these algorithms")

	list := &cobra.Command{
		Use:   "list",
		Short: "List matching problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Load(a.cfg.ProblemsCSVPath)
			if err != nil {
				return err
			}
			problems := c.Find(filter)
			if a.jsonMode {
				return writeJSON(cmd.OutOrStdout(), problems)
			}
			return printProblems(cmd.OutOrStdout(), problems)
		},
	}
	list.Flags().IntVar(&filter.Limit, "limit", 0, "maximum number of problems, 0 for all")

	random := &cobra.Command{
		Use:   "random",
		Short: "Pick one matching problem at random",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Load(a.cfg.ProblemsCSVPath)
			if err != nil {
				return err
			}
			p, err := c.Random(filter)
			if err != nil {
				return err
			}
			if a.jsonMode {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %s\n\n%s\n", p.ID, p.Difficulty, p.Title, p.Question)
			return err
		},
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog distribution by difficulty and algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Load(a.cfg.ProblemsCSVPath)
			if err != nil {
				return err
			}
			s := c.Stats()
			if a.jsonMode {
				return writeJSON(cmd.OutOrStdout(), s)
			}
			return printStats(cmd.OutOrStdout(), s)
		},
	}

	cmd.AddCommand(list, random, stats)
	return cmd
}

func printProblems(w io.Writer, problems []catalog.Problem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDIFFICULTY\tTITLE\tALGORITHMS")
	for _, p := range problems {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Difficulty, p.Title, strings.Join(p.Algorithms, ","))
	}
	return tw.Flush()
}

func printStats(w io.Writer, s catalog.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "total\t%d\n", s.TotalProblems)
	for _, key := range sortedKeys(s.DifficultyDistribution) {
		fmt.Fprintf(tw, "difficulty/%s\t%d\n", key, s.DifficultyDistribution[key])
	}
	for _, key := range sortedKeys(s.AlgorithmDistribution) {
		fmt.Fprintf(tw, "algorithm/%s\t%d\n", key, s.AlgorithmDistribution[key])
	}
	return tw.Flush()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
