package errors

import "net/http"

func NewRateLimitExceeded() *Exception {
	return &Exception{
		StatusCode: http.StatusTooManyRequests,
		ErrorCode:  CodeRateLimitExceeded,
		Category:   "Too Many Requests",
		Message:    "Too many requests. Please slow down and try again in a moment.",
	}
}
