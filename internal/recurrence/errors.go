package recurrence

import "errors"

// Domain-specific errors for the recurrence engine.
var (
	ErrMissingDueDate  = errors.New("once-off task has no admin due date")
	ErrUnsupportedRule = errors.New("unsupported frequency rule")
	ErrNoAppearance    = errors.New("no frequency rule produces an appearance on this date")
)
