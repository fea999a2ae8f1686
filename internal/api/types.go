package api

import (
	"github.com/povarna/generative-ai-agents/interprep/internal/catalog"
)

type HealthResponse struct {
	Status        string `json:"status" description:"Service status"`
	Version       string `json:"version" description:"API version"`
	RubricVersion string `json:"rubric_version" description:"Active rubric version"`
	Transcription bool   `json:"transcription" description:"Whether audio transcription is available"`
}

type TranscriptionResponse struct {
	Transcript string `json:"transcript" description:"Text recognised in the recording"`
	Recording  string `json:"recording,omitempty" description:"Where the uploaded recording was archived"`
}

type RubricField struct {
	Name    string `json:"name"`
	Min     int    `json:"min"`
	Max     int    `json:"max"`
	Default int    `json:"default"`
}

type RubricResponse struct {
	Version    string        `json:"version" description:"Rubric version"`
	Schema     string        `json:"schema" description:"Score schema, legacy or full"`
	MaxRaw     int           `json:"max_raw" description:"Highest achievable raw total"`
	Categories []string      `json:"categories" description:"Allowed predicted categories"`
	Fields     []RubricField `json:"fields" description:"Score dimensions and their ranges"`
	Text       string        `json:"text" description:"Rubric text sent to the model"`
}

type ProblemsResponse struct {
	Problems []catalog.Problem `json:"problems"`
	Count    int               `json:"count"`
}

// ProblemQuery is the validated form of the problem listing query string.
type ProblemQuery struct {
	Difficulties []string `validate:"dive,oneof=easy medium hard"`
	Algorithms   []string `validate:"dive,required"`
	Limit        int      `validate:"gte=0,lte=200"`
}

func (q ProblemQuery) Filter() catalog.Filter {
	return catalog.Filter{
		Difficulties: q.Difficulties,
		Algorithms:   q.Algorithms,
		Limit:        q.Limit,
	}
}
