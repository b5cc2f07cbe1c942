package recurrence

import (
	"time"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/pkg/civil"
)

// lockTime is the wall-clock cutoff on the lock date. After this instant an
// incomplete occurrence is permanently missed.
var lockTime = civil.TimeOfDay{Hour: 23, Minute: 59}

// LockResolver computes the absolute instant after which an un-done
// occurrence can no longer be actioned.
type LockResolver struct {
	loc *time.Location
}

// NewLockResolver creates a LockResolver for the operating timezone.
func NewLockResolver(loc *time.Location) *LockResolver {
	return &LockResolver{loc: loc}
}

// LockAt returns the lock instant for the occurrence that appeared on
// appearance with due date due. Nil means the occurrence never auto-locks.
func (r *LockResolver) LockAt(rule model.FrequencyRule, appearance, due civil.Date, hol HolidayChecker) *time.Time {
	var lockDate civil.Date

	switch rule.Kind {
	case model.FrequencyOnceOff:
		return nil

	case model.FrequencyEveryDay, model.FrequencyOnceWeekly,
		model.FrequencyOnceMonthly, model.FrequencyEndOfMonth:
		lockDate = due

	case model.FrequencyWeekday:
		// Locks at the end of the carry window, not the due date.
		lockDate = weekEndCutoff(appearance, hol)

	case model.FrequencyStartOfMonth:
		lockDate = monthEndCutoff(appearance, hol)

	default:
		return nil
	}

	at := lockDate.At(lockTime, r.loc)
	return &at
}
