package errors

import (
	"errors"
	"net/http"
)

// Stable machine-readable error codes exposed in the response envelope.
const (
	CodeNotFound          = "TASK_NOT_FOUND"
	CodeBadRequest        = "INVALID_REQUEST"
	CodeValidation        = "VALIDATION_FAILED"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeInternal          = "INTERNAL_ERROR"
)

// Exception is a classified failure carrying everything the response
// envelope needs. Message is the user-facing text; Detail, when set,
// is server-side diagnostic context that is logged but never returned
// to the client.
type Exception struct {
	StatusCode int
	ErrorCode  string
	Category   string
	Message    string
	Detail     string
}

func (e *Exception) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
