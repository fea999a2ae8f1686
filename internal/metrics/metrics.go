package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EvaluationOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "interprep",
		Subsystem: "evaluation",
		Name:      "outcomes_total",
		Help:      "Evaluations by terminal outcome",
	}, []string{"outcome"})

	ModelDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "interprep",
		Subsystem: "llm",
		Name:      "invoke_duration_seconds",
		Help:      "Duration of generative model calls",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
	}, []string{"status"})

	FinalScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "interprep",
		Subsystem: "evaluation",
		Name:      "final_score",
		Help:      "Distribution of final scores for successful evaluations",
		Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 75, 80, 90, 100},
	})

	ShapeViolations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "interprep",
		Subsystem: "evaluation",
		Name:      "shape_violations_total",
		Help:      "Schema deviations found in parsed model replies",
	})

	Transcriptions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "interprep",
		Subsystem: "transcription",
		Name:      "requests_total",
		Help:      "Transcription requests by status",
	}, []string{"status"})

	HTTPRequests = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "interprep",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and status",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"})
)
