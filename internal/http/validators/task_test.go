package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-management.com/task-management/internal/dto"
	apperrors "task-management.com/task-management/internal/errors"
)

func strPtr(s string) *string { return &s }

func TestValidateCreateTaskRequest_Valid(t *testing.T) {
	err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: "Write report"})
	assert.NoError(t, err)
}

func TestValidateCreateTaskRequest_BlankTitle(t *testing.T) {
	for _, title := range []string{"", "   "} {
		err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: title})

		var schemaErr *apperrors.SchemaValidationError
		require.ErrorAs(t, err, &schemaErr)
		require.Len(t, schemaErr.Fields, 1)
		assert.Equal(t, "title", schemaErr.Fields[0].Field)
		assert.Equal(t, title, schemaErr.Fields[0].RejectedValue)
	}
}

func TestValidateCreateTaskRequest_CollectsAllViolations(t *testing.T) {
	err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Title:       strings.Repeat("x", 101),
		Description: strPtr(strings.Repeat("d", 2001)),
		AssignedTo:  strPtr(strings.Repeat("a", 101)),
	})

	var schemaErr *apperrors.SchemaValidationError
	require.ErrorAs(t, err, &schemaErr)
	require.Len(t, schemaErr.Fields, 3)

	names := make([]string, len(schemaErr.Fields))
	for i, f := range schemaErr.Fields {
		names[i] = f.Field
	}
	assert.ElementsMatch(t, []string{"title", "description", "assignedTo"}, names)
}

func TestValidateUpdateTaskRequest_BlankTitlePassesSchema(t *testing.T) {
	// A blank title on update is rejected by the service, not by the
	// declarative field constraints.
	err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Title: strPtr("  ")})
	assert.NoError(t, err)
}

func TestValidateUpdateTaskRequest_SizeLimits(t *testing.T) {
	err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{
		Title:      strPtr(strings.Repeat("x", 101)),
		AssignedTo: strPtr(strings.Repeat("a", 101)),
	})

	var schemaErr *apperrors.SchemaValidationError
	require.ErrorAs(t, err, &schemaErr)
	assert.Len(t, schemaErr.Fields, 2)
}

func TestValidateUpdateTaskRequest_EmptyRequestIsValid(t *testing.T) {
	assert.NoError(t, ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{}))
}
