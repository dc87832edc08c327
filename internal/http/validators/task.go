package validators

import (
	"strings"
	"unicode/utf8"

	"task-management.com/task-management/internal/dto"
	apperrors "task-management.com/task-management/internal/errors"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 2000
	maxAssignedToLength  = 100
)

// ValidateCreateTaskRequest checks the declarative field constraints,
// collecting every violation into one error.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	var fields []apperrors.FieldError

	if strings.TrimSpace(r.Title) == "" {
		fields = append(fields, apperrors.FieldError{
			Field:         "title",
			Message:       "Task title is required",
			RejectedValue: r.Title,
		})
	} else if utf8.RuneCountInString(r.Title) > maxTitleLength {
		fields = append(fields, titleTooLong(r.Title))
	}

	fields = appendSizeChecks(fields, r.Description, r.AssignedTo)

	if len(fields) > 0 {
		return apperrors.NewSchemaValidation(fields)
	}
	return nil
}

// ValidateUpdateTaskRequest checks only the size constraints; a blank
// title on update is a service-level concern, not a schema one.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	var fields []apperrors.FieldError

	if r.Title != nil && utf8.RuneCountInString(*r.Title) > maxTitleLength {
		fields = append(fields, titleTooLong(*r.Title))
	}

	fields = appendSizeChecks(fields, r.Description, r.AssignedTo)

	if len(fields) > 0 {
		return apperrors.NewSchemaValidation(fields)
	}
	return nil
}

func appendSizeChecks(fields []apperrors.FieldError, description, assignedTo *string) []apperrors.FieldError {
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLength {
		fields = append(fields, apperrors.FieldError{
			Field:         "description",
			Message:       "Description must not exceed 2000 characters",
			RejectedValue: *description,
		})
	}
	if assignedTo != nil && utf8.RuneCountInString(*assignedTo) > maxAssignedToLength {
		fields = append(fields, apperrors.FieldError{
			Field:         "assignedTo",
			Message:       "Assigned-to identifier must not exceed 100 characters",
			RejectedValue: *assignedTo,
		})
	}
	return fields
}

func titleTooLong(title string) apperrors.FieldError {
	return apperrors.FieldError{
		Field:         "title",
		Message:       "Task title must not exceed 100 characters",
		RejectedValue: title,
	}
}
