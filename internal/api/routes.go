package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/interprep/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/interprep/internal/catalog"
	"github.com/povarna/generative-ai-agents/interprep/internal/lessons"
	"github.com/povarna/generative-ai-agents/interprep/internal/models"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const mimeMultipart = "multipart/form-data"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/evaluate").
			To(handler.Evaluate).
			Doc("Evaluate a spoken explanation against the rubric").
			Metadata(restfulspec.KeyOpenAPITags, []string{"evaluate"}).
			Reads(models.EvaluationRequest{}).
			Writes(models.EvaluationResult{}).
			Returns(200, "OK", models.EvaluationResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/transcribe").
			To(handler.Transcribe).
			Doc("Transcribe an uploaded recording").
			Metadata(restfulspec.KeyOpenAPITags, []string{"transcribe"}).
			Consumes(mimeMultipart).
			Param(ws.MultiPartFormParameter("audio", "Recorded answer (wav, mp3, m4a, webm, ...)").DataType("file")).
			Writes(TranscriptionResponse{}).
			Returns(200, "OK", TranscriptionResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(415, "Unsupported Media Type", middleware.ErrorResponse{}).
			Returns(502, "Transcription Backend Failed", middleware.ErrorResponse{}).
			Returns(503, "Transcription Disabled", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/rubric").
			To(handler.Rubric).
			Doc("Active rubric").
			Metadata(restfulspec.KeyOpenAPITags, []string{"rubric"}).
			Writes(RubricResponse{}).
			Returns(200, "OK", RubricResponse{}))

	ws.
		Route(ws.GET("/problems").
			To(handler.Problems).
			Doc("List practice problems").
			Metadata(restfulspec.KeyOpenAPITags, []string{"problems"}).
			Param(ws.QueryParameter("difficulty", "easy, medium or hard; repeat or comma separate").DataType("string").Required(false)).
			Param(ws.QueryParameter("algorithm", "Algorithm tag; repeat or comma separate").DataType("string").Required(false)).
			Param(ws.QueryParameter("limit", "Maximum number of problems (0-200)").DataType("integer").Required(false)).
			Writes(ProblemsResponse{}).
			Returns(200, "OK", ProblemsResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/problems/random").
			To(handler.RandomProblem).
			Doc("Pick a random practice problem").
			Metadata(restfulspec.KeyOpenAPITags, []string{"problems"}).
			Param(ws.QueryParameter("difficulty", "easy, medium or hard").DataType("string").Required(false)).
			Param(ws.QueryParameter("algorithm", "Algorithm tag").DataType("string").Required(false)).
			Writes(catalog.Problem{}).
			Returns(200, "OK", catalog.Problem{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "No Matching Problem", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/problems/stats").
			To(handler.ProblemStats).
			Doc("Catalog statistics").
			Metadata(restfulspec.KeyOpenAPITags, []string{"problems"}).
			Writes(catalog.Stats{}).
			Returns(200, "OK", catalog.Stats{}))

	ws.
		Route(ws.GET("/lessons/{category}").
			To(handler.Lesson).
			Doc("Lesson plan for a category").
			Metadata(restfulspec.KeyOpenAPITags, []string{"lessons"}).
			Param(ws.PathParameter("category", "Rubric category, e.g. sliding_window").DataType("string")).
			Writes(lessons.Plan{}).
			Returns(200, "OK", lessons.Plan{}).
			Returns(404, "Unknown Category", middleware.ErrorResponse{}))

	container.Add(ws)
	container.Handle("/metrics", promhttp.Handler())
}
