package scoring

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	"github.com/povarna/generative-ai-agents/interprep/internal/rubric"
	"github.com/spf13/cast"
)

// DetectSchema infers the schema from the keys present: any full-schema key wins,
// otherwise any legacy key selects legacy. ok is false when no known key is present.
func DetectSchema(raw map[string]any) (schema rubric.Schema, ok bool) {
	for _, f := range rubric.Fields(rubric.SchemaFull) {
		if _, found := raw[f.Name]; found {
			return rubric.SchemaFull, true
		}
	}
	for _, f := range rubric.Fields(rubric.SchemaLegacy) {
		if _, found := raw[f.Name]; found {
			return rubric.SchemaLegacy, true
		}
	}
	return rubric.SchemaFull, false
}

// Normalize turns a raw score mapping into a canonical record using the inferred schema,
// full when nothing can be inferred. A nil mapping is treated as empty.
func Normalize(raw map[string]any) models.NormalizedScore {
	return NormalizeOr(raw, rubric.SchemaFull)
}

// NormalizeOr is Normalize with fallback used when raw carries no known score key.
func NormalizeOr(raw map[string]any, fallback rubric.Schema) models.NormalizedScore {
	schema, ok := DetectSchema(raw)
	if !ok {
		schema = fallback
	}
	return NormalizeAs(raw, schema)
}

// NormalizeAs reads every field of schema from raw, substituting the field default
// when a value is missing or unreadable, clamps it into range and derives the totals.
func NormalizeAs(raw map[string]any, schema rubric.Schema) models.NormalizedScore {
	score := models.NormalizedScore{Schema: string(schema)}

	total := 0
	for _, f := range rubric.Fields(schema) {
		v, ok := coerceInt(raw[f.Name])
		if !ok {
			v = f.Default
		}
		v = clampInt(v, f.Min, f.Max)
		total += v
		setField(&score, f.Name, v)
	}

	if total < 0 {
		total = 0
	}

	score.TotalRaw = total
	score.FinalScore = FinalScore(total, rubric.MaxRaw(schema))
	score.PerformanceLevel = Level(score.FinalScore)
	return score
}

// Default is the score used by fallback results: every field at its default.
func Default(schema rubric.Schema) models.NormalizedScore {
	return NormalizeAs(nil, schema)
}

// FinalScore scales total into [0,100]: round(clamp(total/maxRaw, 0, 1) * 100).
func FinalScore(total, maxRaw int) int {
	if maxRaw <= 0 {
		return 0
	}
	ratio := float64(total) / float64(maxRaw)
	ratio = math.Max(0, math.Min(1, ratio))
	return int(math.Round(ratio * 100))
}

// Level bands a final score. Boundaries belong to the higher band.
func Level(finalScore int) models.PerformanceLevel {
	switch {
	case finalScore >= 90:
		return models.PerformanceExcellent
	case finalScore >= 75:
		return models.PerformanceGood
	case finalScore >= 60:
		return models.PerformanceSatisfactory
	case finalScore >= 40:
		return models.PerformanceNeedsImprovement
	default:
		return models.PerformancePoor
	}
}

// coerceInt reads model-supplied values the way a lenient reader would: integers and
// decimal strings as is, floats truncated, bools as 1/0. Anything else is not ok.
func coerceInt(v any) (int, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		return truncFloat(t)
	case float32:
		return truncFloat(float64(t))
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(max(-1e9, min(1e9, n))), true
		}
		if f, err := t.Float64(); err == nil {
			return truncFloat(f)
		}
		return 0, false
	case string:
		return parseIntString(t)
	}

	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseIntString reads decimal text only, so "010" is ten and never octal.
func parseIntString(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return max(-1e9, min(1e9, n)), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return truncFloat(f)
}

func truncFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Max(-1e9, math.Min(1e9, math.Trunc(f)))
	return int(f), true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func setField(s *models.NormalizedScore, name string, v int) {
	p := &v
	switch name {
	case "problem_id":
		s.ProblemID = p
	case "complexity":
		s.Complexity = p
	case "clarity":
		s.Clarity = p
	case "pattern_recognition":
		s.PatternRecognition = p
	case "problem_understanding":
		s.ProblemUnderstanding = p
	case "approach_selection":
		s.ApproachSelection = p
	case "time_complexity":
		s.TimeComplexity = p
	case "space_complexity":
		s.SpaceComplexity = p
	case "case_analysis":
		s.CaseAnalysis = p
	case "structure_flow":
		s.StructureFlow = p
	case "technical_communication":
		s.TechnicalCommunication = p
	case "completeness":
		s.Completeness = p
	case "bonus_penalty":
		s.BonusPenalty = p
	}
}
