package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle     = errors.New("title is required")
	ErrEmptyDueDate   = errors.New("due date is required")
	ErrInvalidDueDate = errors.New("due date is invalid")
	ErrInvalidFilter  = errors.New("unknown filter")
	ErrTaskNotFound   = errors.New("task not found")
)

// IsValidationError reports whether err is a rejected form input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrEmptyDueDate) ||
		errors.Is(err, ErrInvalidDueDate)
}
