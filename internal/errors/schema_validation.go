package errors

import (
	"fmt"
	"strings"
)

// FieldError describes a single field-constraint violation.
type FieldError struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	RejectedValue any    `json:"rejectedValue"`
}

// SchemaValidationError aggregates every violating field of a request
// into one failure.
type SchemaValidationError struct {
	Fields []FieldError
}

func (e *SchemaValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("validation failed on fields [%s]", strings.Join(names, ", "))
}

func NewSchemaValidation(fields []FieldError) *SchemaValidationError {
	return &SchemaValidationError{Fields: fields}
}
