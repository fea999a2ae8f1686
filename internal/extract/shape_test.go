package extract

import "testing"

func TestShapeViolations_WellFormed(t *testing.T) {
	payload := map[string]any{
		"predicted_category": "graph",
		"reasoning":          "BFS over the grid",
		"confidence":         0.8,
		"score":              map[string]any{},
		"comments":           []any{"state the complexity"},
		"overall_level":      "intermediate",
	}

	if v := ShapeViolations(payload); len(v) != 0 {
		t.Errorf("expected no violations, got %v", v)
	}
}

func TestShapeViolations_Reported(t *testing.T) {
	payload := map[string]any{
		"predicted_category": 7.0,
		"confidence":         "high",
		"overall_level":      "expert",
	}

	v := ShapeViolations(payload)
	// wrong category type, wrong confidence type, bad level, missing reasoning/score/comments
	if len(v) < 6 {
		t.Errorf("expected at least 6 violations, got %d: %v", len(v), v)
	}
}
