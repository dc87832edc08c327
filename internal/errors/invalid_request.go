package errors

import "net/http"

func NewInvalidRequest(message string) *Exception {
	return &Exception{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  CodeBadRequest,
		Category:   "Bad Request",
		Message:    message,
	}
}
