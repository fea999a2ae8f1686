package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	"github.com/povarna/generative-ai-agents/interprep/internal/rubric"
)

const evaluationTemplate = `You are a technical interviewer evaluating a candidate's explanation
for a coding interview problem.
{{if .Problem}}
Here is the problem statement:

"""{{.Problem}}"""
{{end}}{{if .Code}}
Here is the candidate's submitted code:

"""{{.Code}}"""
{{end}}
Here is the candidate's spoken explanation (transcript):

"""{{.Transcript}}"""

Use this rubric:

{{.RubricText}}

CATEGORIES (use exactly one of these):
{{.Categories}}

Now:

1. Decide which algorithm category best matches the explanation.
2. Score every dimension in the rubric within its stated range.
3. Provide a short explanation of your reasoning (2-4 sentences).
4. Provide 2-3 short, concrete comments to help the candidate improve.
5. Estimate a confidence score between 0 and 1.
6. Choose an overall_level from: "beginner", "intermediate", "advanced".

Respond with ONLY valid JSON in exactly this format:

{{.Skeleton}}
`

// Builder renders evaluation prompts for one rubric.
type Builder struct {
	rubric   *rubric.Definition
	template *template.Template
	skeleton string
}

type promptData struct {
	Transcript string
	Problem    string
	Code       string
	RubricText string
	Categories string
	Skeleton   string
}

func NewBuilder(def *rubric.Definition) (*Builder, error) {
	tmpl, err := template.New("evaluation").Parse(evaluationTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse evaluation prompt template: %w", err)
	}

	return &Builder{
		rubric:   def,
		template: tmpl,
		skeleton: Skeleton(def),
	}, nil
}

// Build returns the prompt for a request. The transcript is embedded as is, an
// empty one included.
func (b *Builder) Build(req models.EvaluationRequest) (string, error) {
	data := promptData{
		Transcript: req.Transcript,
		Problem:    strings.TrimSpace(req.Problem),
		Code:       strings.TrimSpace(req.Code),
		RubricText: strings.TrimSpace(b.rubric.Text()),
		Categories: strings.Join(b.rubric.Categories(), ", "),
		Skeleton:   b.skeleton,
	}

	var buf bytes.Buffer
	if err := b.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}

// Skeleton is the literal JSON response example for the rubric's schema.
func Skeleton(def *rubric.Definition) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	sb.WriteString("  \"predicted_category\": \"one_of_the_categories\",\n")
	sb.WriteString("  \"reasoning\": \"short explanation\",\n")
	if def.Schema() == rubric.SchemaFull {
		sb.WriteString("  \"is_solution_correct\": true,\n")
		sb.WriteString("  \"correctness_reasoning\": \"why the code is or isn't correct\",\n")
	}
	sb.WriteString("  \"confidence\": 0.0,\n")
	sb.WriteString("  \"score\": {\n")

	fields := def.Fields()
	for i, f := range fields {
		fmt.Fprintf(&sb, "    %q: %d", f.Name, f.Default)
		if i < len(fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  },\n")
	sb.WriteString("  \"comments\": [\n    \"comment 1\",\n    \"comment 2\"\n  ],\n")
	sb.WriteString("  \"overall_level\": \"beginner\"\n")
	sb.WriteString("}")
	return sb.String()
}
