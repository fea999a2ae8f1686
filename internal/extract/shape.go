package extract

import (
	"github.com/xeipuuv/gojsonschema"
)

// responseShape describes what a well-behaved model returns. Violations are reported
// for diagnostics only; coercion downstream tolerates all of them.
var responseShape = gojsonschema.NewGoLoader(map[string]any{
	"type":     "object",
	"required": []string{"predicted_category", "reasoning", "confidence", "score", "comments", "overall_level"},
	"properties": map[string]any{
		"predicted_category":    map[string]any{"type": "string"},
		"reasoning":             map[string]any{"type": "string"},
		"is_solution_correct":   map[string]any{"type": "boolean"},
		"correctness_reasoning": map[string]any{"type": "string"},
		"confidence":            map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"score":                 map[string]any{"type": "object"},
		"comments":              map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"overall_level":         map[string]any{"enum": []string{"beginner", "intermediate", "advanced"}},
	},
})

// ShapeViolations lists the ways payload deviates from the expected response shape.
// An empty slice means the payload matched.
func ShapeViolations(payload map[string]any) []string {
	result, err := gojsonschema.Validate(responseShape, gojsonschema.NewGoLoader(payload))
	if err != nil {
		return []string{err.Error()}
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}
	return violations
}
