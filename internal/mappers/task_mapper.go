package mappers

import (
	"strings"
	"time"

	"task-management.com/task-management/internal/dto"
	model "task-management.com/task-management/internal/models"
)

// TaskMapper holds the pure request/entity/response transforms. The
// clock is injected so assignment timestamps are deterministic in
// tests.
type TaskMapper struct {
	now func() time.Time
}

func NewTaskMapper() *TaskMapper {
	return &TaskMapper{now: time.Now}
}

// ToEntity builds a new task from a create request. Title and
// description are trimmed; a missing completion flag defaults to
// false; the assignment timestamp is set only when a non-blank
// assignee is given.
func (m *TaskMapper) ToEntity(req *dto.CreateTaskRequest) *model.Task {
	task := &model.Task{
		Title:   strings.TrimSpace(req.Title),
		DueDate: req.DueDate.TimeOrNil(),
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		task.Description = &trimmed
	}
	if req.IsCompleted != nil {
		task.IsCompleted = *req.IsCompleted
	}
	if req.AssignedTo != nil {
		if assignee := strings.TrimSpace(*req.AssignedTo); assignee != "" {
			now := m.now()
			task.AssignedTo = &assignee
			task.AssignedAt = &now
		}
	}
	return task
}

// UpdateEntity applies a partial update in place. A nil request field
// leaves the record untouched. A present assignedTo is trimmed: blank
// clears both assignment fields, non-blank sets them and refreshes the
// assignment timestamp even when the assignee is unchanged.
func (m *TaskMapper) UpdateEntity(task *model.Task, req *dto.UpdateTaskRequest) {
	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		task.Description = &trimmed
	}
	if req.IsCompleted != nil {
		task.IsCompleted = *req.IsCompleted
	}
	if due := req.DueDate.TimeOrNil(); due != nil {
		task.DueDate = due
	}
	if req.AssignedTo != nil {
		assignee := strings.TrimSpace(*req.AssignedTo)
		if assignee == "" {
			task.AssignedTo = nil
			task.AssignedAt = nil
		} else {
			now := m.now()
			task.AssignedTo = &assignee
			task.AssignedAt = &now
		}
	}
}

// ToResponse is a field-by-field projection of the persisted record.
func (m *TaskMapper) ToResponse(task *model.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
		DueDate:     dto.DateTimeFromPtr(task.DueDate),
		CreatedAt:   dto.NewDateTime(task.CreatedAt),
		UpdatedAt:   dto.NewDateTime(task.UpdatedAt),
		CreatedBy:   task.CreatedBy,
		UpdatedBy:   task.UpdatedBy,
		AssignedTo:  task.AssignedTo,
		AssignedAt:  dto.DateTimeFromPtr(task.AssignedAt),
	}
}
