package scoring

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	"github.com/povarna/generative-ai-agents/interprep/internal/rubric"
)

func TestNormalize_PerfectFullScore(t *testing.T) {
	raw := map[string]any{
		"pattern_recognition":     15.0,
		"problem_understanding":   10.0,
		"approach_selection":      10.0,
		"time_complexity":         15.0,
		"space_complexity":        15.0,
		"case_analysis":           5.0,
		"structure_flow":          10.0,
		"technical_communication": 10.0,
		"completeness":            10.0,
		"bonus_penalty":           6.0,
	}

	score := Normalize(raw)

	if score.Schema != "full" {
		t.Errorf("expected full schema, got %s", score.Schema)
	}
	if score.TotalRaw != 106 {
		t.Errorf("expected total_raw=106, got %d", score.TotalRaw)
	}
	if score.FinalScore != 96 {
		t.Errorf("expected final_score=96, got %d", score.FinalScore)
	}
	if score.PerformanceLevel != models.PerformanceExcellent {
		t.Errorf("expected Excellent, got %s", score.PerformanceLevel)
	}
	if score.BonusPenalty == nil || *score.BonusPenalty != 6 {
		t.Errorf("expected bonus_penalty=6, got %v", score.BonusPenalty)
	}
}

func TestNormalize_EmptyMapping(t *testing.T) {
	score := Normalize(map[string]any{})

	if score.Schema != "full" {
		t.Errorf("expected full schema for empty mapping, got %s", score.Schema)
	}
	if score.TotalRaw != 0 || score.FinalScore != 0 {
		t.Errorf("expected zero totals, got total_raw=%d final_score=%d", score.TotalRaw, score.FinalScore)
	}
	if score.PerformanceLevel != models.PerformancePoor {
		t.Errorf("expected Poor, got %s", score.PerformanceLevel)
	}
	for _, f := range []*int{score.PatternRecognition, score.CaseAnalysis, score.BonusPenalty} {
		if f == nil || *f != 0 {
			t.Errorf("expected defaulted field 0, got %v", f)
		}
	}
}

func TestNormalize_NilMapping(t *testing.T) {
	score := Normalize(nil)

	if score.FinalScore != 0 || score.PerformanceLevel != models.PerformancePoor {
		t.Errorf("expected zero Poor score for nil mapping, got %+v", score)
	}
}

func TestNormalize_SumMatchesFormula(t *testing.T) {
	// deterministic sweep over every field value combination along one axis at a time
	fields := rubric.Fields(rubric.SchemaFull)
	for _, target := range fields {
		for v := target.Min; v <= target.Max; v++ {
			raw := map[string]any{}
			expected := 0
			for i, f := range fields {
				val := (i*7 + 3) % (f.Max - f.Min + 1)
				val += f.Min
				if f.Name == target.Name {
					val = v
				}
				raw[f.Name] = float64(val)
				expected += val
			}

			score := Normalize(raw)

			wantTotal := max(expected, 0)
			if score.TotalRaw != wantTotal {
				t.Fatalf("%s=%d: expected total_raw=%d, got %d", target.Name, v, wantTotal, score.TotalRaw)
			}
			wantFinal := int(math.Round(math.Max(0, math.Min(1, float64(wantTotal)/110)) * 100))
			if score.FinalScore != wantFinal {
				t.Fatalf("%s=%d: expected final_score=%d, got %d", target.Name, v, wantFinal, score.FinalScore)
			}
		}
	}
}

func TestNormalize_Legacy(t *testing.T) {
	tests := []struct {
		name      string
		raw       map[string]any
		wantTotal int
		wantFinal int
		wantLevel models.PerformanceLevel
	}{
		{"all max", map[string]any{"problem_id": 3.0, "complexity": 3.0, "clarity": 3.0}, 9, 100, models.PerformanceExcellent},
		{"mixed", map[string]any{"problem_id": 2.0, "complexity": 3.0, "clarity": 2.0}, 7, 78, models.PerformanceGood},
		{"missing default to 1", map[string]any{"complexity": 2.0}, 4, 44, models.PerformanceNeedsImprovement},
		{"out of range clamped", map[string]any{"problem_id": 0.0, "complexity": 9.0, "clarity": "2"}, 6, 67, models.PerformanceSatisfactory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Normalize(tt.raw)
			if score.Schema != "legacy" {
				t.Fatalf("expected legacy schema, got %s", score.Schema)
			}
			if score.PatternRecognition != nil {
				t.Error("expected full-schema fields to be absent")
			}
			if score.TotalRaw != tt.wantTotal {
				t.Errorf("expected total_raw=%d, got %d", tt.wantTotal, score.TotalRaw)
			}
			if score.FinalScore != tt.wantFinal {
				t.Errorf("expected final_score=%d, got %d", tt.wantFinal, score.FinalScore)
			}
			if score.PerformanceLevel != tt.wantLevel {
				t.Errorf("expected %s, got %s", tt.wantLevel, score.PerformanceLevel)
			}
		})
	}
}

func TestNormalize_MixedKeysPreferFull(t *testing.T) {
	score := Normalize(map[string]any{"clarity": 3.0, "completeness": 8.0})

	if score.Schema != "full" {
		t.Errorf("expected full schema when a full key is present, got %s", score.Schema)
	}
	if score.Clarity != nil {
		t.Error("expected legacy field to be dropped under the full schema")
	}
	if score.TotalRaw != 8 {
		t.Errorf("expected total_raw=8, got %d", score.TotalRaw)
	}
}

func TestNormalize_MalformedValues(t *testing.T) {
	raw := map[string]any{
		"pattern_recognition":     "twelve",
		"problem_understanding":   "07",
		"approach_selection":      " 08 ",
		"time_complexity":         12.9,
		"space_complexity":        true,
		"case_analysis":           []any{1.0},
		"structure_flow":          map[string]any{"v": 1.0},
		"technical_communication": "010",
		"completeness":            "9/10",
		"bonus_penalty":           json.Number("-4"),
	}

	score := Normalize(raw)

	want := map[string]*int{
		"pattern_recognition":     score.PatternRecognition,
		"problem_understanding":   score.ProblemUnderstanding,
		"approach_selection":      score.ApproachSelection,
		"time_complexity":         score.TimeComplexity,
		"space_complexity":        score.SpaceComplexity,
		"case_analysis":           score.CaseAnalysis,
		"structure_flow":          score.StructureFlow,
		"technical_communication": score.TechnicalCommunication,
		"completeness":            score.Completeness,
		"bonus_penalty":           score.BonusPenalty,
	}
	expected := map[string]int{
		"pattern_recognition":     0,
		"problem_understanding":   7,
		"approach_selection":      8,
		"time_complexity":         12,
		"space_complexity":        1,
		"case_analysis":           0,
		"structure_flow":          0,
		"technical_communication": 10,
		"completeness":            0,
		"bonus_penalty":           -4,
	}

	for name, got := range want {
		if got == nil {
			t.Errorf("%s: expected a value, got nil", name)
			continue
		}
		if *got != expected[name] {
			t.Errorf("%s: expected %d, got %d", name, expected[name], *got)
		}
	}
	if score.TotalRaw != 34 {
		t.Errorf("expected total_raw=34, got %d", score.TotalRaw)
	}
}

func TestCoerceInt_Strings(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"7", 7, true},
		{"010", 10, true},
		{"08", 8, true},
		{"09", 9, true},
		{" -3 ", -3, true},
		{"+4", 4, true},
		{"7.9", 7, true},
		{"0x10", 0, false},
		{"1e1", 10, true},
		{"", 0, false},
		{"seven", 0, false},
	}

	for _, tt := range tests {
		got, ok := coerceInt(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("coerceInt(%q) = %d,%t, want %d,%t", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNormalizeOr_FallbackOnlyWithoutKnownKeys(t *testing.T) {
	empty := NormalizeOr(map[string]any{}, rubric.SchemaLegacy)
	if empty.Schema != string(rubric.SchemaLegacy) || empty.TotalRaw != 3 || empty.FinalScore != 33 {
		t.Errorf("expected legacy defaults, got %+v", empty)
	}

	unrelated := NormalizeOr(map[string]any{"overall": 5.0}, rubric.SchemaLegacy)
	if unrelated.Schema != string(rubric.SchemaLegacy) {
		t.Errorf("expected legacy for unknown keys, got %s", unrelated.Schema)
	}

	detected := NormalizeOr(map[string]any{"completeness": 10.0}, rubric.SchemaLegacy)
	if detected.Schema != string(rubric.SchemaFull) {
		t.Errorf("expected detected full schema to win, got %s", detected.Schema)
	}

	if Normalize(map[string]any{}).Schema != string(rubric.SchemaFull) {
		t.Error("Normalize should default to the full schema")
	}
}

func TestNormalize_NegativeTotalFloorsAtZero(t *testing.T) {
	score := Normalize(map[string]any{"bonus_penalty": -10.0, "case_analysis": 2.0})

	if score.TotalRaw != 0 {
		t.Errorf("expected total_raw floored at 0, got %d", score.TotalRaw)
	}
	if score.FinalScore != 0 {
		t.Errorf("expected final_score=0, got %d", score.FinalScore)
	}
	if *score.BonusPenalty != -10 {
		t.Errorf("expected bonus_penalty kept at -10, got %d", *score.BonusPenalty)
	}
}

func TestNormalize_NonFiniteFloatsDefault(t *testing.T) {
	score := Normalize(map[string]any{"completeness": math.NaN(), "structure_flow": math.Inf(1)})

	if *score.Completeness != 0 || *score.StructureFlow != 0 {
		t.Errorf("expected non-finite values to default, got %d and %d", *score.Completeness, *score.StructureFlow)
	}
}

func TestLevel_Bands(t *testing.T) {
	tests := []struct {
		score int
		want  models.PerformanceLevel
	}{
		{100, models.PerformanceExcellent},
		{90, models.PerformanceExcellent},
		{89, models.PerformanceGood},
		{75, models.PerformanceGood},
		{74, models.PerformanceSatisfactory},
		{60, models.PerformanceSatisfactory},
		{59, models.PerformanceNeedsImprovement},
		{40, models.PerformanceNeedsImprovement},
		{39, models.PerformancePoor},
		{0, models.PerformancePoor},
	}

	for _, tt := range tests {
		if got := Level(tt.score); got != tt.want {
			t.Errorf("Level(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestLevel_CoversWholeRange(t *testing.T) {
	for s := 0; s <= 100; s++ {
		if Level(s) == "" {
			t.Fatalf("no band for %d", s)
		}
	}
}

func TestFinalScore(t *testing.T) {
	tests := []struct {
		total, max, want int
	}{
		{106, 110, 96},
		{0, 110, 0},
		{120, 110, 100},
		{-5, 110, 0},
		{7, 9, 78},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := FinalScore(tt.total, tt.max); got != tt.want {
			t.Errorf("FinalScore(%d, %d) = %d, want %d", tt.total, tt.max, got, tt.want)
		}
	}
}

func TestDefault(t *testing.T) {
	legacy := Default(rubric.SchemaLegacy)
	if legacy.TotalRaw != 3 || legacy.FinalScore != 33 || legacy.PerformanceLevel != models.PerformancePoor {
		t.Errorf("unexpected legacy default score: %+v", legacy)
	}

	full := Default(rubric.SchemaFull)
	if full.TotalRaw != 0 || full.PerformanceLevel != models.PerformancePoor {
		t.Errorf("unexpected full default score: %+v", full)
	}
}
