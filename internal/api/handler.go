package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/emicklei/go-restful/v3"
	"github.com/go-playground/validator/v10"
	"github.com/povarna/generative-ai-agents/interprep/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/interprep/internal/catalog"
	"github.com/povarna/generative-ai-agents/interprep/internal/lessons"
	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	"github.com/povarna/generative-ai-agents/interprep/internal/recording"
	"github.com/povarna/generative-ai-agents/interprep/internal/rubric"
	"github.com/povarna/generative-ai-agents/interprep/internal/transcription"
	"github.com/rs/zerolog"
)

const (
	apiVersion     = "1.0.0"
	maxUploadBytes = 25 << 20
	// room for multipart boundaries and part headers around the audio
	multipartOverhead = 1 << 20
)

type Evaluator interface {
	Execute(ctx context.Context, req models.EvaluationRequest) models.EvaluationResult
}

type Handler struct {
	evaluator   Evaluator
	rubric      *rubric.Definition
	catalog     *catalog.Catalog
	lessons     *lessons.Library
	transcriber transcription.Transcriber
	archive     recording.Archive
	validate    *validator.Validate
	logger      *zerolog.Logger
}

type HandlerOptions struct {
	Evaluator   Evaluator
	Rubric      *rubric.Definition
	Catalog     *catalog.Catalog
	Lessons     *lessons.Library
	Transcriber transcription.Transcriber
	Archive     recording.Archive
}

func NewHandler(opts HandlerOptions, logger *zerolog.Logger) *Handler {
	archive := opts.Archive
	if archive == nil {
		archive = recording.Discard{}
	}
	return &Handler{
		evaluator:   opts.Evaluator,
		rubric:      opts.Rubric,
		catalog:     opts.Catalog,
		lessons:     opts.Lessons,
		transcriber: opts.Transcriber,
		archive:     archive,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger,
	}
}

// POST /api/v1/evaluate
// Body: EvaluationRequest
// Returns: EvaluationResult, also when the model failed
func (h *Handler) Evaluate(req *restful.Request, resp *restful.Response) {
	var evalRequest models.EvaluationRequest
	if err := req.ReadEntity(&evalRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Int("transcript_chars", len(evalRequest.Transcript)).
		Bool("has_problem", evalRequest.Problem != "").
		Bool("has_code", evalRequest.Code != "").
		Msg("Start evaluation")

	result := h.evaluator.Execute(req.Request.Context(), evalRequest)

	h.logger.Info().
		Str("outcome", string(result.Outcome)).
		Str("category", result.PredictedCategory).
		Int("final_score", result.Score.FinalScore).
		Msg("Evaluation complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/transcribe
// Body: multipart form with an "audio" file
func (h *Handler) Transcribe(req *restful.Request, resp *restful.Response) {
	if h.transcriber == nil {
		middleware.HandleError(resp, middleware.ErrTranscriptionDisabled, http.StatusServiceUnavailable)
		return
	}

	req.Request.Body = http.MaxBytesReader(resp.ResponseWriter, req.Request.Body, maxUploadBytes+multipartOverhead)
	if err := req.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.HandleError(resp, middleware.ErrUploadTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		middleware.HandleError(resp, fmt.Errorf("invalid multipart body: %w", err), http.StatusBadRequest)
		return
	}
	file, header, err := req.Request.FormFile("audio")
	if err != nil {
		middleware.HandleError(resp, middleware.ErrMissingAudio, http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		middleware.HandleError(resp, middleware.ErrUploadTooLarge, http.StatusRequestEntityTooLarge)
		return
	}

	// one byte past the limit tells a truncated read from an exact fit
	audio, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		middleware.HandleError(resp, fmt.Errorf("failed to read upload: %w", err), http.StatusBadRequest)
		return
	}
	if len(audio) > maxUploadBytes {
		middleware.HandleError(resp, middleware.ErrUploadTooLarge, http.StatusRequestEntityTooLarge)
		return
	}

	mtype, err := transcription.CheckMedia(audio)
	if err != nil {
		h.logger.Warn().Err(err).Str("file", header.Filename).Msg("Rejected upload")
		middleware.HandleError(resp, err, http.StatusUnsupportedMediaType)
		return
	}

	ctx := req.Request.Context()
	location, err := h.archive.Save(ctx, audio, mtype.Extension(), mtype.String())
	if err != nil {
		// the transcript is still useful without an archived copy
		h.logger.Warn().Err(err).Msg("Failed to archive recording")
	}

	text, err := h.transcriber.Transcribe(ctx, header.Filename, audio)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, transcription.ErrUnsupportedMedia) {
			status = http.StatusUnsupportedMediaType
		}
		middleware.HandleError(resp, err, status)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, TranscriptionResponse{
		Transcript: text,
		Recording:  location,
	})
}

// GET /api/v1/rubric
func (h *Handler) Rubric(req *restful.Request, resp *restful.Response) {
	fields := []RubricField{}
	for _, f := range h.rubric.Fields() {
		fields = append(fields, RubricField{Name: f.Name, Min: f.Min, Max: f.Max, Default: f.Default})
	}

	resp.WriteHeaderAndEntity(http.StatusOK, RubricResponse{
		Version:    h.rubric.Version(),
		Schema:     string(h.rubric.Schema()),
		MaxRaw:     h.rubric.MaxRaw(),
		Categories: h.rubric.Categories(),
		Fields:     fields,
		Text:       h.rubric.Text(),
	})
}

// GET /api/v1/problems
func (h *Handler) Problems(req *restful.Request, resp *restful.Response) {
	query, err := h.problemQuery(req)
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	problems := h.catalog.Find(query.Filter())
	resp.WriteHeaderAndEntity(http.StatusOK, ProblemsResponse{Problems: problems, Count: len(problems)})
}

// GET /api/v1/problems/random
func (h *Handler) RandomProblem(req *restful.Request, resp *restful.Response) {
	query, err := h.problemQuery(req)
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	problem, err := h.catalog.Random(query.Filter())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, catalog.ErrNoProblems) {
			status = http.StatusNotFound
		}
		middleware.HandleError(resp, err, status)
		return
	}
	resp.WriteHeaderAndEntity(http.StatusOK, problem)
}

// GET /api/v1/problems/stats
func (h *Handler) ProblemStats(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, h.catalog.Stats())
}

// GET /api/v1/lessons/{category}
func (h *Handler) Lesson(req *restful.Request, resp *restful.Response) {
	category := req.PathParameter("category")
	plan, ok := h.lessons.Get(category)
	if !ok {
		middleware.HandleError(resp, fmt.Errorf("%w: %s", middleware.ErrUnknownCategory, category), http.StatusNotFound)
		return
	}
	resp.WriteHeaderAndEntity(http.StatusOK, plan)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:        "ok",
		Version:       apiVersion,
		RubricVersion: h.rubric.Version(),
		Transcription: h.transcriber != nil,
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func (h *Handler) problemQuery(req *restful.Request) (ProblemQuery, error) {
	query := ProblemQuery{
		Difficulties: listParameter(req, "difficulty"),
		Algorithms:   listParameter(req, "algorithm"),
	}
	if raw := req.QueryParameter("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return query, fmt.Errorf("invalid limit %q: %w", raw, err)
		}
		query.Limit = limit
	}
	for i, d := range query.Difficulties {
		query.Difficulties[i] = strings.ToLower(d)
	}
	if err := h.validate.Struct(query); err != nil {
		return query, fmt.Errorf("invalid query: %w", err)
	}
	return query, nil
}

// listParameter accepts both repeated parameters and comma separated values.
func listParameter(req *restful.Request, name string) []string {
	var values []string
	for _, raw := range req.QueryParameters(name) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}
