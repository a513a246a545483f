package repository

import "errors"

var (
	ErrFailedToLoad = errors.New("failed to load tasks")
	ErrFailedToSave = errors.New("failed to save tasks")
	ErrCorruptData  = errors.New("stored tasks are unreadable")
)
