package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "task-management.com/task-management/internal/errors"
)

const userMessageValidation = "Some fields in your request are invalid. Please correct them and try again."
const userMessageInternal = "Something went wrong on our side. Please try again in a few moments."

// NewErrorHandler returns the single place that turns any failure into
// the external error envelope. No handler renders error bodies itself.
func NewErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		path := c.Request().URL.Path
		apiErr := classify(err, path)

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(apiErr.Status)
		} else {
			writeErr = c.JSON(apiErr.Status, apiErr)
		}
		if writeErr != nil {
			log.Printf("failed to write error response: path=%s, err=%v", path, writeErr)
		}
	}
}

func classify(err error, path string) *ApiError {
	var (
		schemaErr *apperrors.SchemaValidationError
		ex        *apperrors.Exception
		httpErr   *echo.HTTPError
	)

	switch {
	case errors.As(err, &schemaErr):
		log.Printf("validation failed: %v, path=%s", schemaErr, path)
		apiErr := newApiError(http.StatusBadRequest, apperrors.CodeValidation, "Validation Failed", userMessageValidation, path)
		apiErr.FieldErrors = schemaErr.Fields
		return apiErr

	case errors.As(err, &ex):
		if ex.StatusCode >= http.StatusInternalServerError {
			log.Printf("request failed: %v, path=%s", ex, path)
		} else {
			log.Printf("request rejected: %v, path=%s", ex, path)
		}
		return newApiError(ex.StatusCode, ex.ErrorCode, ex.Category, ex.Message, path)

	case errors.As(err, &httpErr):
		// Routing-level failures echo raises itself (no route, bad
		// method). Domain errors never travel as echo.HTTPError.
		log.Printf("http error: status=%d, path=%s, err=%v", httpErr.Code, path, err)
		if httpErr.Code >= http.StatusInternalServerError {
			return newApiError(httpErr.Code, apperrors.CodeInternal, http.StatusText(httpErr.Code), userMessageInternal, path)
		}
		return newApiError(httpErr.Code, apperrors.CodeBadRequest, http.StatusText(httpErr.Code), fmt.Sprintf("%v", httpErr.Message), path)

	default:
		log.Printf("unhandled error: path=%s, err=%v", path, err)
		return newApiError(http.StatusInternalServerError, apperrors.CodeInternal, "Internal Server Error", userMessageInternal, path)
	}
}
