package errors

import (
	"fmt"
	"net/http"
)

const userMessageNotFound = "We couldn't find a task with the given ID. Please check the ID and try again."

func NewTaskNotFound(id int) *Exception {
	return &Exception{
		StatusCode: http.StatusNotFound,
		ErrorCode:  CodeNotFound,
		Category:   "Not Found",
		Message:    userMessageNotFound,
		Detail:     fmt.Sprintf("task not found: id=%d", id),
	}
}
