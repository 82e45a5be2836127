// Package common provides shared utilities used across all features
package common

import (
	"errors"
	"fmt"
	"net/http"
)

// Quote/search error taxonomy. Handlers translate these into user-visible
// states; none of them may leak past the HTTP layer as a 500.
var (
	// ErrNormalization: upstream quote missing a usable buy amount in any
	// known location. Not retried automatically.
	ErrNormalization = errors.New("quote unavailable for this pair")

	// ErrNetwork: transport failure or timeout on an external call.
	ErrNetwork = errors.New("failed to reach upstream service")

	// ErrValidation: rejected synchronously at the input boundary, before
	// any network call is issued.
	ErrValidation = errors.New("invalid swap input")

	// ErrStale: a response superseded by a newer request. Never user-visible;
	// callers drop it silently.
	ErrStale = errors.New("stale response discarded")
)

// HttpError represents an HTTP error with status code and message
type HttpError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s %s", e.StatusCode, e.Code, e.Message)
}

func messageOrDefault(msg string, defaultMsg string) string {
	if msg != "" {
		return msg
	}
	return defaultMsg
}

// HTTP Error constructors

func HTTPErrorBadRequest(msg string) *HttpError {
	return &HttpError{
		StatusCode: http.StatusBadRequest,
		Code:       "BAD_REQUEST",
		Message:    messageOrDefault(msg, "Bad request"),
	}
}

func HTTPErrorNotFound(msg string) *HttpError {
	return &HttpError{
		StatusCode: http.StatusNotFound,
		Code:       "NOT_FOUND",
		Message:    messageOrDefault(msg, "Not found"),
	}
}

func HTTPErrorInternalError(msg string) *HttpError {
	return &HttpError{
		StatusCode: http.StatusInternalServerError,
		Code:       "INTERNAL_SERVER_ERROR",
		Message:    messageOrDefault(msg, "Internal server error"),
	}
}

func HTTPErrorUnauthorized(msg string) *HttpError {
	return &HttpError{
		StatusCode: http.StatusUnauthorized,
		Code:       "UNAUTHORIZED",
		Message:    messageOrDefault(msg, "Unauthorized"),
	}
}

func HTTPErrorBadGateway(msg string) *HttpError {
	return &HttpError{
		StatusCode: http.StatusBadGateway,
		Code:       "UPSTREAM_ERROR",
		Message:    messageOrDefault(msg, "Upstream service error"),
	}
}

func HTTPErrorUnprocessable(msg string) *HttpError {
	return &HttpError{
		StatusCode: http.StatusUnprocessableEntity,
		Code:       "QUOTE_UNAVAILABLE",
		Message:    messageOrDefault(msg, "Quote unavailable for this pair"),
	}
}
