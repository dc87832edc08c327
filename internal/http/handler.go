package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"task-management.com/task-management/internal/dto"
	apperrors "task-management.com/task-management/internal/errors"
	"task-management.com/task-management/internal/http/validators"
	"task-management.com/task-management/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	completed, err := parseOptionalBool(c.QueryParam("completed"), "completed")
	if err != nil {
		return err
	}

	page, err := parsePageRequest(c)
	if err != nil {
		return err
	}

	paged, err := h.taskService.FindAll(c.Request().Context(), completed, c.QueryParam("assignedTo"), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, paged)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewMalformedBody(fmt.Sprintf("bind failed: %v", err))
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	created, err := h.taskService.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("%s/%d", c.Request().URL.Path, created.ID))
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewMalformedBody(fmt.Sprintf("bind failed: %v", err))
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	updated, err := h.taskService.Update(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func parseTaskID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperrors.NewInvalidRequest("Task ID must be an integer.")
	}
	return id, nil
}

func parseOptionalBool(value, name string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, apperrors.NewInvalidRequest(fmt.Sprintf("Query parameter %q must be true or false.", name))
	}
	return &parsed, nil
}
