package executor

import (
	"fmt"
	"math"
	"strings"

	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	"github.com/spf13/cast"
)

// toString stringifies scalars, nil becomes "".
func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

func toStringPtr(v any) *string {
	if v == nil {
		return nil
	}
	s := toString(v)
	return &s
}

// toBoolPtr accepts real booleans and the strings "true" / "false" only.
func toBoolPtr(v any) *bool {
	switch b := v.(type) {
	case bool:
		return &b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true":
			t := true
			return &t
		case "false":
			f := false
			return &f
		}
	}
	return nil
}

func toConfidence(v any) float64 {
	if v == nil {
		return 0
	}
	if _, isBool := v.(bool); isBool {
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return math.Max(0, math.Min(1, f))
}

func toComments(v any) []string {
	comments := []string{}
	items, ok := v.([]any)
	if !ok {
		return comments
	}
	for _, item := range items {
		if s := strings.TrimSpace(toString(item)); s != "" {
			comments = append(comments, s)
		}
	}
	return comments
}

func toLevel(v any) models.Level {
	switch level := models.Level(normalizeLabel(toString(v))); level {
	case models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
		return level
	}
	return models.LevelBeginner
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
