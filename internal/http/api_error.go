package http

import (
	"time"

	apperrors "task-management.com/task-management/internal/errors"
)

// ApiError is the uniform error envelope. FieldErrors is present only
// for schema-validation failures.
type ApiError struct {
	Timestamp   time.Time              `json:"timestamp"`
	Status      int                    `json:"status"`
	ErrorCode   string                 `json:"errorCode"`
	Error       string                 `json:"error"`
	Message     string                 `json:"message"`
	Path        string                 `json:"path"`
	FieldErrors []apperrors.FieldError `json:"fieldErrors,omitempty"`
}

func newApiError(status int, errorCode, category, message, path string) *ApiError {
	return &ApiError{
		Timestamp: time.Now().UTC(),
		Status:    status,
		ErrorCode: errorCode,
		Error:     category,
		Message:   message,
		Path:      path,
	}
}
