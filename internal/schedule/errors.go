package schedule

import "errors"

// Domain-specific errors for the schedule package.
var (
	ErrInvalidDateRange   = errors.New("date range is invalid")
	ErrInstanceNotFound   = errors.New("task instance not found")
	ErrInstanceLocked     = errors.New("task instance is locked and can no longer be actioned")
	ErrTaskNotFound       = errors.New("task not found")
	ErrNoOccurrenceOnDate = errors.New("task has no occurrence on this date")
)
