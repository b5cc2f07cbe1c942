package repository

import "errors"

// Storage-level errors for the schedule repositories.
var (
	ErrTaskNotFound     = errors.New("task not found in store")
	ErrInstanceNotFound = errors.New("task instance not found in store")
)
