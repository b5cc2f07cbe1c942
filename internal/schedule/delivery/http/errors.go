package http

import (
	"errors"

	"pharmacy-ops/internal/schedule"
)

// mapError translates usecase errors into the messages surfaced to clients.
// Unrecognized errors are passed through untouched.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrInvalidDateRange),
		errors.Is(err, schedule.ErrInstanceLocked),
		errors.Is(err, schedule.ErrNoOccurrenceOnDate),
		errors.Is(err, schedule.ErrTaskNotFound),
		errors.Is(err, schedule.ErrInstanceNotFound):
		return err
	default:
		return errors.New("internal error")
	}
}
