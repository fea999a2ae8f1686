package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strconv"
	"strings"
)

var ErrNoProblems = errors.New("no problems match the criteria")

const defaultDifficulty = "medium"

type Problem struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Difficulty string   `json:"difficulty"`
	Question   string   `json:"question"`
	Algorithms []string `json:"algorithms"`
}

type Stats struct {
	TotalProblems          int            `json:"total_problems"`
	DifficultyDistribution map[string]int `json:"difficulty_distribution"`
	AlgorithmDistribution  map[string]int `json:"algorithm_distribution"`
}

// Filter selects problems. Empty lists match everything and a zero Limit means no limit.
type Filter struct {
	Difficulties []string
	Algorithms   []string
	Limit        int
}

// Catalog is an immutable, in-memory list of practice problems.
type Catalog struct {
	problems []Problem
}

func New(problems []Problem) *Catalog {
	return &Catalog{problems: slices.Clone(problems)}
}

func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open problems file: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return c, nil
}

// Parse reads a CSV with a header row. Header names are case-insensitive; "title" is required,
// "id", "difficulty" and "description" are optional.
func Parse(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["title"]; !ok {
		return nil, fmt.Errorf("missing title column")
	}

	cell := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var problems []Problem
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row+1, err)
		}

		p := Problem{
			ID:         cell(record, "id"),
			Title:      cell(record, "title"),
			Difficulty: strings.ToLower(cell(record, "difficulty")),
			Question:   cell(record, "description"),
		}
		if p.ID == "" {
			p.ID = strconv.Itoa(row)
		}
		if p.Difficulty == "" {
			p.Difficulty = defaultDifficulty
		}
		if p.Question == "" {
			p.Question = p.Title
		}
		p.Algorithms = Classify(p.Title + " " + cell(record, "description"))
		problems = append(problems, p)
	}

	return &Catalog{problems: problems}, nil
}

func (c *Catalog) Len() int {
	return len(c.problems)
}

// Find returns matching problems in file order.
func (c *Catalog) Find(f Filter) []Problem {
	difficulties := lowerAll(f.Difficulties)
	algorithms := knownAlgorithms(f.Algorithms)

	matches := []Problem{}
	for _, p := range c.problems {
		if len(difficulties) > 0 && !slices.Contains(difficulties, p.Difficulty) {
			continue
		}
		if len(algorithms) > 0 && !slices.ContainsFunc(algorithms, func(a string) bool {
			return slices.Contains(p.Algorithms, a)
		}) {
			continue
		}
		matches = append(matches, p)
		if f.Limit > 0 && len(matches) == f.Limit {
			break
		}
	}
	return matches
}

// Random picks one matching problem. Limit is ignored.
func (c *Catalog) Random(f Filter) (Problem, error) {
	f.Limit = 0
	matches := c.Find(f)
	if len(matches) == 0 {
		return Problem{}, ErrNoProblems
	}
	return matches[rand.IntN(len(matches))], nil
}

func (c *Catalog) Stats() Stats {
	stats := Stats{
		TotalProblems:          len(c.problems),
		DifficultyDistribution: map[string]int{},
		AlgorithmDistribution:  map[string]int{},
	}
	for _, p := range c.problems {
		stats.DifficultyDistribution[p.Difficulty]++
		for _, a := range p.Algorithms {
			stats.AlgorithmDistribution[a]++
		}
	}
	return stats
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}
