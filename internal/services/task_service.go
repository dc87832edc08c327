package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"task-management.com/task-management/internal/dto"
	apperrors "task-management.com/task-management/internal/errors"
	"task-management.com/task-management/internal/mappers"
	model "task-management.com/task-management/internal/models"
	repository "task-management.com/task-management/internal/repositories"
)

const maxTitleLength = 100

// TaskService owns the task business rules. It is stateless apart from
// its repository and mapper references.
type TaskService struct {
	repo   *repository.TaskRepository
	mapper *mappers.TaskMapper
}

func NewTaskService(repo *repository.TaskRepository, mapper *mappers.TaskMapper) *TaskService {
	return &TaskService{
		repo:   repo,
		mapper: mapper,
	}
}

// FindAll returns one page of tasks matching the optional completion
// and assignee filters, with page metadata.
func (s *TaskService) FindAll(ctx context.Context, completed *bool, assignedTo string, page dto.PageRequest) (*dto.PagedTaskResponse, error) {
	filter := repository.TaskFilter{
		Completed:  completed,
		AssignedTo: assignedTo,
	}

	tasks, total, err := s.repo.FindPage(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	content := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		content = append(content, *s.mapper.ToResponse(&tasks[i]))
	}

	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}

	return &dto.PagedTaskResponse{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page.Page == 0,
		Last:          page.Page+1 >= totalPages,
	}, nil
}

func (s *TaskService) FindByID(ctx context.Context, id int) (*dto.TaskResponse, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewTaskNotFound(id)
		}
		return nil, err
	}
	return s.mapper.ToResponse(task), nil
}

func (s *TaskService) Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}

	task := s.mapper.ToEntity(req)
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	log.Printf("task created: id=%d, title=%q", task.ID, task.Title)
	return s.mapper.ToResponse(task), nil
}

// Update applies a partial update inside a single store transaction,
// so a concurrent delete cannot slip between the lookup and the save.
func (s *TaskService) Update(ctx context.Context, id int, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	var task *model.Task

	err := s.repo.Transaction(ctx, func(tx *repository.TaskRepository) error {
		found, err := tx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewTaskNotFound(id)
			}
			return err
		}

		if req.Title != nil {
			if err := validateTitle(*req.Title); err != nil {
				return err
			}
		}

		s.mapper.UpdateEntity(found, req)
		if err := tx.Save(ctx, found); err != nil {
			return err
		}

		task = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("task updated: id=%d", id)
	return s.mapper.ToResponse(task), nil
}

func (s *TaskService) DeleteByID(ctx context.Context, id int) error {
	err := s.repo.Transaction(ctx, func(tx *repository.TaskRepository) error {
		exists, err := tx.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewTaskNotFound(id)
		}
		return tx.DeleteByID(ctx, id)
	})
	if err != nil {
		return err
	}

	log.Printf("task deleted: id=%d", id)
	return nil
}

// validateTitle re-checks the title at the service level, guarding
// against blank-after-trim values even when the caller bypassed the
// schema validators.
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewInvalidRequest("Task title is required and cannot be blank. Please provide a title.")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return apperrors.NewInvalidRequest("Task title must not exceed 100 characters. Please shorten the title.")
	}
	return nil
}
