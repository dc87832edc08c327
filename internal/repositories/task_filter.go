package repository

import (
	"strings"

	"gorm.io/gorm"
)

// TaskFilter accumulates the optional list criteria. Absent criteria
// are omitted from the query entirely; present ones AND-compose. The
// zero filter matches every task.
type TaskFilter struct {
	Completed  *bool
	AssignedTo string
}

// Scope renders the filter as a gorm scope. The assignee match is
// case-insensitive, trimming and lowercasing both sides.
func (f TaskFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Completed != nil {
			db = db.Where("is_completed = ?", *f.Completed)
		}
		if assignee := strings.TrimSpace(f.AssignedTo); assignee != "" {
			db = db.Where("LOWER(assigned_to) = ?", strings.ToLower(assignee))
		}
		return db
	}
}
