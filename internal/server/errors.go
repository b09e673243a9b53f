package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/memento/internal/memento/domain"
)

// APIError is the JSON error envelope returned by every failing route.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *APIError) Error() string { return e.Code }

var (
	ErrNotFound    = &APIError{Status: http.StatusNotFound, Code: "not_found", Message: "resource not found"}
	ErrRateLimited = &APIError{Status: http.StatusTooManyRequests, Code: "rate_limited", Message: "too many render requests"}
)

func invalidRequestError() *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: "invalid_request", Message: "request body could not be parsed"}
}

func newValidationError(field, code, message string) *APIError {
	return &APIError{Status: http.StatusUnprocessableEntity, Code: code, Message: message, Field: field}
}

// statusFor maps engine sentinels onto HTTP statuses. Validation failures
// are unprocessable input, bad references are bad requests, everything the
// engine could not help is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrPartyNameRequired),
		errors.Is(err, domain.ErrTracksRequired),
		errors.Is(err, domain.ErrTooManyTracks):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnknownTemplate),
		errors.Is(err, domain.ErrInvalidPhoto):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRenderFailed),
		errors.Is(err, domain.ErrEncodeFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// errorCode extracts the stable sentinel code from a possibly wrapped error.
func errorCode(err error) string {
	for _, sentinel := range []error{
		domain.ErrPartyNameRequired,
		domain.ErrTracksRequired,
		domain.ErrTooManyTracks,
		domain.ErrUnknownTemplate,
		domain.ErrInvalidPhoto,
		domain.ErrRenderFailed,
		domain.ErrEncodeFailed,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "internal_error"
}

// AbortWithError writes the error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, apiErr)
		return
	}

	status := statusFor(err)
	code := errorCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "render failed"
	}
	c.AbortWithStatusJSON(status, &APIError{Status: status, Code: code, Message: message})
}
