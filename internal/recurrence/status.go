package recurrence

import (
	"time"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/pkg/civil"
)

// StatusMachine computes the display status of an occurrence at a given
// instant. The lock check runs strictly before the due-time check: an
// occurrence past its lock instant is missed, never overdue.
type StatusMachine struct {
	loc *time.Location
}

// NewStatusMachine creates a StatusMachine for the operating timezone.
func NewStatusMachine(loc *time.Location) *StatusMachine {
	return &StatusMachine{loc: loc}
}

// Current returns the status of occ at now given the caller-tracked
// completion state. Statuses are recomputed fresh on every call, so a
// caller-side "undo" of a completion simply yields the non-terminal status
// again.
func (m *StatusMachine) Current(occ model.Occurrence, completion model.CompletionState, now time.Time) model.Status {
	if completion.Done {
		return model.StatusDone
	}

	if occ.LockAt != nil && !now.Before(*occ.LockAt) {
		return model.StatusMissed
	}

	dueAt := occ.DueDate.At(occ.DueTime, m.loc)
	if !now.Before(dueAt) {
		return model.StatusOverdue
	}

	if civil.DateOf(now.In(m.loc)).Equal(occ.DueDate) {
		return model.StatusDueToday
	}

	return model.StatusNotDue
}
