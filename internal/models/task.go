package model

import "time"

// Task is the persisted task record. CreatedAt is written once on
// insert and never updated afterwards; UpdatedAt is refreshed on every
// save. AssignedAt is present exactly when AssignedTo is present.
type Task struct {
	ID          int        `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:100;not null" json:"title"`
	Description *string    `gorm:"size:2000" json:"description"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;<-:create" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CreatedBy   *string    `gorm:"size:100" json:"created_by,omitempty"`
	UpdatedBy   *string    `gorm:"size:100" json:"updated_by,omitempty"`
	AssignedTo  *string    `gorm:"size:100" json:"assigned_to,omitempty"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
}
