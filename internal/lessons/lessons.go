package lessons

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed plans.yaml
var plansYAML []byte

type Plan struct {
	Category            string   `yaml:"-" json:"category"`
	Summary             string   `yaml:"summary" json:"summary"`
	CoreConcepts        []string `yaml:"core_concepts" json:"core_concepts"`
	RecommendedProblems []string `yaml:"recommended_problems" json:"recommended_problems"`
	PracticeNext        []string `yaml:"practice_next" json:"practice_next"`
}

type Library struct {
	plans map[string]Plan
}

// Load parses the built-in lesson plans.
func Load() (*Library, error) {
	return Parse(plansYAML)
}

func Parse(data []byte) (*Library, error) {
	var plans map[string]Plan
	if err := yaml.Unmarshal(data, &plans); err != nil {
		return nil, fmt.Errorf("failed to parse lesson plans: %w", err)
	}
	for category, plan := range plans {
		plan.Category = category
		plans[category] = plan
	}
	return &Library{plans: plans}, nil
}

func (l *Library) Get(category string) (Plan, bool) {
	plan, ok := l.plans[strings.ToLower(strings.TrimSpace(category))]
	return plan, ok
}

func (l *Library) Categories() []string {
	categories := make([]string, 0, len(l.plans))
	for c := range l.plans {
		categories = append(categories, c)
	}
	slices.Sort(categories)
	return categories
}

// Markdown renders the plan the way it is shown next to an evaluation.
func (p Plan) Markdown() string {
	var b strings.Builder
	b.WriteString(p.Summary)
	b.WriteString("\n")
	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n**%s**\n", title)
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	section("Core Concepts", p.CoreConcepts)
	section("Recommended Problems", p.RecommendedProblems)
	section("What to Practice Next", p.PracticeNext)
	return b.String()
}
