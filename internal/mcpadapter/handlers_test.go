package mcpadapter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/interprep/internal/catalog"
	"github.com/povarna/generative-ai-agents/interprep/internal/lessons"
	"github.com/povarna/generative-ai-agents/interprep/internal/models"
)

type fakeEvaluator struct {
	got models.EvaluationRequest
}

func (f *fakeEvaluator) Execute(_ context.Context, req models.EvaluationRequest) models.EvaluationResult {
	f.got = req
	return models.EvaluationResult{PredictedCategory: "heap", OverallLevel: models.LevelIntermediate}
}

func TestEvaluateHandler(t *testing.T) {
	exec := &fakeEvaluator{}
	handler := NewEvaluateHandler(exec)

	callResult, result, err := handler(context.Background(), nil, models.EvaluationRequest{Transcript: "use a heap", Problem: "top k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if callResult != nil {
		t.Error("structured output only, no explicit call result expected")
	}
	if exec.got.Transcript != "use a heap" || exec.got.Problem != "top k" {
		t.Errorf("input not forwarded: %+v", exec.got)
	}
	if result.PredictedCategory != "heap" {
		t.Errorf("PredictedCategory = %q", result.PredictedCategory)
	}
}

func TestLessonHandler(t *testing.T) {
	library, err := lessons.Load()
	if err != nil {
		t.Fatal(err)
	}
	handler := NewLessonHandler(library)

	_, plan, err := handler(context.Background(), nil, LessonInput{Category: "graph"})
	if err != nil || plan.Category != "graph" {
		t.Fatalf("plan = %+v, err = %v", plan, err)
	}

	if _, _, err := handler(context.Background(), nil, LessonInput{Category: "astrology"}); err == nil {
		t.Fatal("expected an error for an unknown category")
	}
}

func TestProblemHandler(t *testing.T) {
	problems, err := catalog.Parse(strings.NewReader("title,difficulty\nClone Graph,medium\nTwo Sum,easy\n"))
	if err != nil {
		t.Fatal(err)
	}
	handler := NewProblemHandler(problems)

	_, problem, err := handler(context.Background(), nil, ProblemInput{Algorithm: []string{"graph"}})
	if err != nil || problem.Title != "Clone Graph" {
		t.Fatalf("problem = %+v, err = %v", problem, err)
	}

	_, _, err = handler(context.Background(), nil, ProblemInput{Difficulty: []string{"hard"}})
	if !errors.Is(err, catalog.ErrNoProblems) {
		t.Fatalf("err = %v, want ErrNoProblems", err)
	}
}
