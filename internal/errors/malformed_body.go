package errors

import "net/http"

const userMessageBadJSON = "Request body is invalid or contains an invalid value (e.g. date-time). Use ISO-8601 for dates, e.g. 2026-02-18T14:08 or 2026-02-18T14:08:00Z."

func NewMalformedBody(detail string) *Exception {
	return &Exception{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  CodeBadRequest,
		Category:   "Bad Request",
		Message:    userMessageBadJSON,
		Detail:     detail,
	}
}
