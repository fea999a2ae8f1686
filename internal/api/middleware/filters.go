package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/interprep/internal/metrics"
	"github.com/rs/zerolog/log"
)

// Logger logs every request and records its latency.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()
	chain.ProcessFilter(req, resp)
	elapsed := time.Since(start)

	status := resp.StatusCode()
	metrics.HTTPRequests.WithLabelValues(req.Request.Method, strconv.Itoa(status)).Observe(elapsed.Seconds())

	log.Info().
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", status).
		Dur("duration", elapsed).
		Msg("HTTP request")
}

// RecoverPanic turns a handler panic into a 500 instead of dropping the connection.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("path", req.Request.URL.Path).
				Msg("Recovered from panic")
			HandleError(resp, fmt.Errorf("internal server error"), http.StatusInternalServerError)
		}
	}()
	chain.ProcessFilter(req, resp)
}
