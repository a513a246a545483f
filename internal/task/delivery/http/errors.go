package http

import (
	"errors"
	"net/http"

	"task-list-manager/internal/task"
	pkgErrors "task-list-manager/pkg/errors"
)

var (
	errInvalidID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Request errors that are already HTTPErrors pass through.
func (h *handler) mapError(err error) error {
	var he *pkgErrors.HTTPError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrEmptyDueDate),
		errors.Is(err, task.ErrInvalidDueDate):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, task.ErrInvalidFilter):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "filter must be one of all, pending, completed")
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
