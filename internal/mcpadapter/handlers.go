package mcpadapter

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/interprep/internal/catalog"
	"github.com/povarna/generative-ai-agents/interprep/internal/lessons"
	"github.com/povarna/generative-ai-agents/interprep/internal/models"
)

type Evaluator interface {
	Execute(ctx context.Context, req models.EvaluationRequest) models.EvaluationResult
}

// LessonInput is the MCP tool input schema for lesson plan lookup.
type LessonInput struct {
	Category string `json:"category" jsonschema:"rubric category, for example sliding_window"`
}

// ProblemInput is the MCP tool input schema for picking a practice problem.
type ProblemInput struct {
	Difficulty []string `json:"difficulty,omitempty" jsonschema:"allowed difficulties: easy, medium, hard"`
	Algorithm  []string `json:"algorithm,omitempty" jsonschema:"algorithm tags such as array, graph, dynamic_programming"`
}

// Register adds every interprep tool to server.
func Register(server *mcp.Server, exec Evaluator, library *lessons.Library, problems *catalog.Catalog) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "evaluate_transcript",
		Description: "Score a spoken explanation of a coding interview solution against the rubric",
	}, NewEvaluateHandler(exec))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_lesson_plan",
		Description: "Study guidance for an algorithm category",
	}, NewLessonHandler(library))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pick_problem",
		Description: "Pick a random practice problem matching the filters",
	}, NewProblemHandler(problems))
}

// NewEvaluateHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewEvaluateHandler(exec Evaluator) func(context.Context, *mcp.CallToolRequest, models.EvaluationRequest) (*mcp.CallToolResult, models.EvaluationResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input models.EvaluationRequest) (*mcp.CallToolResult, models.EvaluationResult, error) {
		result := exec.Execute(ctx, input)
		return nil, result, nil
	}
}

func NewLessonHandler(library *lessons.Library) func(context.Context, *mcp.CallToolRequest, LessonInput) (*mcp.CallToolResult, lessons.Plan, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LessonInput) (*mcp.CallToolResult, lessons.Plan, error) {
		plan, ok := library.Get(input.Category)
		if !ok {
			return nil, lessons.Plan{}, fmt.Errorf("no lesson plan for category %q", input.Category)
		}
		return nil, plan, nil
	}
}

func NewProblemHandler(problems *catalog.Catalog) func(context.Context, *mcp.CallToolRequest, ProblemInput) (*mcp.CallToolResult, catalog.Problem, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ProblemInput) (*mcp.CallToolResult, catalog.Problem, error) {
		problem, err := problems.Random(catalog.Filter{
			Difficulties: input.Difficulty,
			Algorithms:   input.Algorithm,
		})
		if err != nil {
			return nil, catalog.Problem{}, err
		}
		return nil, problem, nil
	}
}
