package catalog

import (
	"slices"
	"strings"
)

type algorithmKeywords struct {
	name     string
	keywords []string
}

// algorithmTable is matched by substring against the lower-cased title and description.
var algorithmTable = []algorithmKeywords{
	{name: "array", keywords: []string{"array", "matrix"}},
	{name: "string", keywords: []string{"string", "substring"}},
	{name: "tree", keywords: []string{"tree", "bst"}},
	{name: "graph", keywords: []string{"graph", "edge"}},
	{name: "dynamic_programming", keywords: []string{"dp", "dynamic"}},
	{name: "greedy", keywords: []string{"greedy"}},
	{name: "backtracking", keywords: []string{"backtrack"}},
}

// Algorithms lists every tag Classify can produce.
func Algorithms() []string {
	names := make([]string, len(algorithmTable))
	for i, a := range algorithmTable {
		names[i] = a.name
	}
	return names
}

func Classify(text string) []string {
	text = strings.ToLower(text)
	tags := []string{}
	for _, a := range algorithmTable {
		for _, k := range a.keywords {
			if strings.Contains(text, k) {
				tags = append(tags, a.name)
				break
			}
		}
	}
	return tags
}

// knownAlgorithms drops tags the classifier never produces. When nothing known is left
// the algorithm filter is not applied.
func knownAlgorithms(values []string) []string {
	known := Algorithms()
	out := []string{}
	for _, v := range lowerAll(values) {
		if slices.Contains(known, v) {
			out = append(out, v)
		}
	}
	return out
}
