package rubric

import (
	"fmt"
	"slices"
	"strings"
)

// Schema identifies which set of score dimensions a rubric grades on.
type Schema string

const (
	SchemaLegacy Schema = "legacy"
	SchemaFull   Schema = "full"
)

func ParseSchema(s string) (Schema, error) {
	switch Schema(strings.ToLower(strings.TrimSpace(s))) {
	case SchemaFull, "":
		return SchemaFull, nil
	case SchemaLegacy:
		return SchemaLegacy, nil
	default:
		return "", fmt.Errorf("unknown rubric schema %q", s)
	}
}

// Field is one score dimension with its closed range and the value used when
// the model omits it or sends something that cannot be read as an integer.
type Field struct {
	Name    string
	Min     int
	Max     int
	Default int
}

var legacyFields = []Field{
	{Name: "problem_id", Min: 1, Max: 3, Default: 1},
	{Name: "complexity", Min: 1, Max: 3, Default: 1},
	{Name: "clarity", Min: 1, Max: 3, Default: 1},
}

var fullFields = []Field{
	{Name: "pattern_recognition", Min: 0, Max: 15},
	{Name: "problem_understanding", Min: 0, Max: 10},
	{Name: "approach_selection", Min: 0, Max: 10},
	{Name: "time_complexity", Min: 0, Max: 15},
	{Name: "space_complexity", Min: 0, Max: 15},
	{Name: "case_analysis", Min: 0, Max: 5},
	{Name: "structure_flow", Min: 0, Max: 10},
	{Name: "technical_communication", Min: 0, Max: 10},
	{Name: "completeness", Min: 0, Max: 10},
	{Name: "bonus_penalty", Min: -10, Max: 10},
}

// Fields returns the score dimensions of a schema in rubric order.
func Fields(schema Schema) []Field {
	if schema == SchemaLegacy {
		return slices.Clone(legacyFields)
	}
	return slices.Clone(fullFields)
}

// MaxRaw is the highest achievable total for a schema: 9 for legacy, 110 for full.
func MaxRaw(schema Schema) int {
	total := 0
	for _, f := range Fields(schema) {
		total += f.Max
	}
	return total
}

// DefaultCategories is the fixed list a prediction must come from.
var DefaultCategories = []string{
	"arrays",
	"hashmap",
	"two_pointers",
	"sliding_window",
	"binary_search",
	"linked_list",
	"tree",
	"graph",
	"heap",
	"dp",
	"backtracking",
}

// Definition is the rubric injected into every prompt. It is built once at
// startup and shared read-only.
type Definition struct {
	version    string
	schema     Schema
	text       string
	categories []string
}

func New(version string, schema Schema, text string, categories []string) (*Definition, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("rubric text is empty")
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("rubric has no categories")
	}

	seen := make(map[string]bool, len(categories))
	cats := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			return nil, fmt.Errorf("invalid or duplicate category %q", c)
		}
		seen[c] = true
		cats = append(cats, c)
	}

	return &Definition{
		version:    version,
		schema:     schema,
		text:       text,
		categories: cats,
	}, nil
}

// Default returns the built-in rubric for a schema.
func Default(schema Schema) *Definition {
	text, version := fullText, "v2"
	if schema == SchemaLegacy {
		text, version = legacyText, "v1"
	}
	def, _ := New(version, schema, text, DefaultCategories)
	return def
}

func (d *Definition) Version() string { return d.version }

func (d *Definition) Schema() Schema { return d.schema }

func (d *Definition) Text() string { return d.text }

func (d *Definition) Categories() []string { return slices.Clone(d.categories) }

func (d *Definition) Fields() []Field { return Fields(d.schema) }

func (d *Definition) MaxRaw() int { return MaxRaw(d.schema) }

// HasCategory reports whether c is one of the rubric categories, case-insensitively.
func (d *Definition) HasCategory(c string) bool {
	return slices.Contains(d.categories, strings.ToLower(strings.TrimSpace(c)))
}
