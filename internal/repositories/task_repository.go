package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"task-management.com/task-management/internal/dto"
	model "task-management.com/task-management/internal/models"
)

const defaultOrder = "created_at DESC, id ASC"

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Transaction runs fn against a repository bound to a single database
// transaction, so read-then-write operations cannot interleave with a
// concurrent delete on the same record.
func (r *TaskRepository) Transaction(ctx context.Context, fn func(tx *TaskRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&TaskRepository{db: tx})
	})
}

// FindPage returns one page of tasks matching the filter together with
// the total match count.
func (r *TaskRepository) FindPage(ctx context.Context, filter TaskFilter, page dto.PageRequest) ([]model.Task, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Scopes(filter.Scope()).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var tasks []model.Task
	err = r.db.WithContext(ctx).
		Scopes(filter.Scope()).
		Order(orderClause(page.Sort)).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// Save writes every column of an existing task, including ones cleared
// to NULL. The updated_at column is refreshed; created_at is never
// touched.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *TaskRepository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, id).Error
}

// orderClause renders the sort orders as SQL, appending the id
// ascending tie-break unless the caller sorted by id explicitly. Field
// names are assumed already validated against dto.SortColumn.
func orderClause(sort []dto.SortOrder) string {
	if len(sort) == 0 {
		return defaultOrder
	}

	parts := make([]string, 0, len(sort)+1)
	sortedByID := false
	for _, order := range sort {
		column, ok := dto.SortColumn(order.Field)
		if !ok {
			continue
		}
		if column == "id" {
			sortedByID = true
		}
		direction := "ASC"
		if order.Direction == dto.SortDesc {
			direction = "DESC"
		}
		parts = append(parts, column+" "+direction)
	}
	if len(parts) == 0 {
		return defaultOrder
	}
	if !sortedByID {
		parts = append(parts, "id ASC")
	}
	return strings.Join(parts, ", ")
}
