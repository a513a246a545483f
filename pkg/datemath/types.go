package datemath

import "errors"

const (
	// DateLayout is the storage and form layout of a due date.
	DateLayout = "2006-01-02"
	// LongLayout is the display layout of a due date.
	LongLayout = "Monday, January 2, 2006"
	// MaxRelativeYears bounds phrases like "in N days".
	MaxRelativeYears = 100
)

var (
	ErrEmptyDate        = errors.New("date is empty")
	ErrUnrecognizedDate = errors.New("unrecognized date")
)
