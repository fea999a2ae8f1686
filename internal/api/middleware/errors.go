package middleware

import (
	"errors"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

var (
	ErrTranscriptionDisabled = errors.New("transcription is not configured")
	ErrMissingAudio          = errors.New("multipart field 'audio' is required")
	ErrUnknownCategory       = errors.New("no lesson plan for this category")
	ErrUploadTooLarge        = errors.New("uploaded recording exceeds the size limit")
)

type ErrorResponse struct {
	Error   string `json:"error" description:"Error message"`
	Code    int    `json:"code" description:"HTTP status code"`
	Details string `json:"details,omitempty" description:"Additional error details"`
}

func HandleError(resp *restful.Response, err error, status int) {
	body := ErrorResponse{
		Error: err.Error(),
		Code:  status,
	}
	if unwrapped := errors.Unwrap(err); unwrapped != nil {
		body.Details = unwrapped.Error()
	}

	if writeErr := resp.WriteHeaderAndEntity(status, body); writeErr != nil {
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}
