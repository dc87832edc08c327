package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"task-management.com/task-management/internal/dto"
	apperrors "task-management.com/task-management/internal/errors"
)

// parsePageRequest reads page, size and sort query parameters,
// falling back to page 0, size 20, creation time descending.
func parsePageRequest(c echo.Context) (dto.PageRequest, error) {
	page := dto.DefaultPageRequest()

	if v := c.QueryParam("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return page, apperrors.NewInvalidRequest("Query parameter 'page' must be a non-negative integer.")
		}
		page.Page = n
	}

	if v := c.QueryParam("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > dto.MaxPageSize {
			return page, apperrors.NewInvalidRequest(fmt.Sprintf("Query parameter 'size' must be an integer between 1 and %d.", dto.MaxPageSize))
		}
		page.Size = n
	}

	for _, v := range c.QueryParams()["sort"] {
		order, err := parseSortOrder(v)
		if err != nil {
			return page, err
		}
		page.Sort = append(page.Sort, order)
	}

	return page, nil
}

// parseSortOrder parses a "field" or "field,direction" sort parameter
// against the sortable-field whitelist.
func parseSortOrder(value string) (dto.SortOrder, error) {
	parts := strings.SplitN(value, ",", 2)
	field := strings.TrimSpace(parts[0])
	if _, ok := dto.SortColumn(field); !ok {
		return dto.SortOrder{}, apperrors.NewInvalidRequest(fmt.Sprintf("Cannot sort by %q. Sortable fields are id, title, isCompleted, dueDate, createdAt, updatedAt and assignedTo.", field))
	}

	direction := dto.SortAsc
	if len(parts) == 2 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case dto.SortAsc:
			direction = dto.SortAsc
		case dto.SortDesc:
			direction = dto.SortDesc
		default:
			return dto.SortOrder{}, apperrors.NewInvalidRequest(fmt.Sprintf("Invalid sort direction %q. Use 'asc' or 'desc'.", parts[1]))
		}
	}

	return dto.SortOrder{Field: field, Direction: direction}, nil
}
