// Package extract recovers a JSON object from free-form model output.
//
// Known gaps: single-quoted pseudo JSON is not repaired, and a '{' inside a quoted
// string that appears before the real object makes the brace-substring strategy pick
// the wrong span. Both are accepted.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fenceMarker = regexp.MustCompile("```[A-Za-z0-9_+-]*")

// JSONObject tries, in order, a direct parse of the trimmed text, the span from the
// first '{' to the last '}', and a parse with code fences removed. ok is false when
// none yields a JSON object.
func JSONObject(raw string) (map[string]any, bool) {
	text := strings.TrimSpace(raw)

	if obj, ok := parseObject(text); ok {
		return obj, true
	}

	if obj, ok := parseObject(braceSpan(text)); ok {
		return obj, true
	}

	if obj, ok := parseObject(stripCodeFences(text)); ok {
		return obj, true
	}

	return nil, false
}

func parseObject(text string) (map[string]any, bool) {
	if text == "" {
		return nil, false
	}

	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, false
	}

	obj, ok := v.(map[string]any)
	return obj, ok
}

func braceSpan(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return ""
	}
	return text[start : end+1]
}

func stripCodeFences(text string) string {
	return strings.TrimSpace(fenceMarker.ReplaceAllString(text, ""))
}
