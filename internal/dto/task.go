package dto

// CreateTaskRequest is the POST /tasks payload. Optional fields are
// pointers so that an omitted field is distinguishable from an
// explicitly sent empty one.
type CreateTaskRequest struct {
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsCompleted *bool     `json:"isCompleted"`
	DueDate     *DateTime `json:"dueDate"`
	AssignedTo  *string   `json:"assignedTo"`
}

// UpdateTaskRequest is the PUT /tasks/:id payload. Every field is
// optional: nil means "leave unchanged". A present-but-blank
// assignedTo clears the assignment.
type UpdateTaskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	IsCompleted *bool     `json:"isCompleted"`
	DueDate     *DateTime `json:"dueDate"`
	AssignedTo  *string   `json:"assignedTo"`
}

// TaskResponse is the full projection of a persisted task.
type TaskResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
	DueDate     *DateTime `json:"dueDate"`
	CreatedAt   *DateTime `json:"createdAt"`
	UpdatedAt   *DateTime `json:"updatedAt"`
	CreatedBy   *string   `json:"createdBy"`
	UpdatedBy   *string   `json:"updatedBy"`
	AssignedTo  *string   `json:"assignedTo"`
	AssignedAt  *DateTime `json:"assignedAt"`
}

type PagedTaskResponse struct {
	Content       []TaskResponse `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
	First         bool           `json:"first"`
	Last          bool           `json:"last"`
}
