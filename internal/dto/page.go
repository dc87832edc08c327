package dto

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

type SortOrder struct {
	Field     string
	Direction string
}

// PageRequest is a zero-based page specification with an optional sort
// override. The zero sort means the default ordering: creation time
// descending, id ascending as a stable tie-break.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

func DefaultPageRequest() PageRequest {
	return PageRequest{
		Page: 0,
		Size: DefaultPageSize,
	}
}

// Offset returns the row offset of the requested page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// sortColumns maps the sortable response field names to their stored
// columns.
var sortColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"isCompleted": "is_completed",
	"dueDate":     "due_date",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"assignedTo":  "assigned_to",
}

// SortColumn resolves a sortable field name to its column, reporting
// whether the field is sortable at all.
func SortColumn(field string) (string, bool) {
	column, ok := sortColumns[field]
	return column, ok
}
