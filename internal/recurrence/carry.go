package recurrence

import (
	"pharmacy-ops/internal/model"
	"pharmacy-ops/pkg/civil"
)

// CarryResolver decides whether the occurrence that first appeared on
// appearance is still the live instance on current, or has been superseded
// by a newer appearance.
type CarryResolver struct{}

// NewCarryResolver creates a CarryResolver.
func NewCarryResolver() *CarryResolver {
	return &CarryResolver{}
}

// Carries reports whether the occurrence from appearance is still live on
// current.
func (r *CarryResolver) Carries(task model.MasterTask, rule model.FrequencyRule, appearance, current civil.Date, hol HolidayChecker) bool {
	if current.Before(appearance) {
		return false
	}

	switch rule.Kind {
	case model.FrequencyOnceOff:
		// No automatic end; lives until externally marked done.
		return true

	case model.FrequencyEveryDay:
		// Each day is its own instance.
		return current.Equal(appearance)

	case model.FrequencyOnceWeekly, model.FrequencyWeekday:
		// Live through the end of the appearance's week, even past the due
		// date.
		return !current.After(weekEndCutoff(appearance, hol))

	case model.FrequencyStartOfMonth:
		// Live through the end-of-month Saturday cutoff.
		return !current.After(monthEndCutoff(appearance, hol))

	case model.FrequencyOnceMonthly, model.FrequencyEndOfMonth:
		// Live only up to and including the due date, which for these rules
		// is the month-end cutoff itself.
		return !current.After(monthEndCutoff(appearance, hol))

	default:
		return false
	}
}
