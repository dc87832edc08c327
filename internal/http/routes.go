package http

import (
	"github.com/labstack/echo/v4"

	middleware "task-management.com/task-management/internal/http/middlewares"
	"task-management.com/task-management/internal/ratelimit"
)

func Register(e *echo.Echo, h *Handler, limiter ratelimit.Limiter) {
	e.HTTPErrorHandler = NewErrorHandler()

	e.Use(middleware.RequestID())
	e.Use(middleware.RateLimiter(limiter))

	g := e.Group("/tasks")
	g.GET("", h.ListTasks)
	g.GET("/:id", h.GetTask)
	g.POST("", h.CreateTask)
	g.PUT("/:id", h.UpdateTask)
	g.DELETE("/:id", h.DeleteTask)
}
