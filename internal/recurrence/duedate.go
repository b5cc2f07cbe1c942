package recurrence

import (
	"pharmacy-ops/internal/model"
	"pharmacy-ops/pkg/civil"
)

// Default due times per timing category.
var defaultDueTimes = map[model.TimingCategory]civil.TimeOfDay{
	model.TimingOpening:      {Hour: 9, Minute: 30},
	model.TimingAnytime:      {Hour: 16, Minute: 30},
	model.TimingBeforeCutoff: {Hour: 16, Minute: 55},
	model.TimingClosing:      {Hour: 17, Minute: 0},
}

// DueResolver computes the due date and due time of an appearance.
type DueResolver struct{}

// NewDueResolver creates a DueDateResolver/DueTimeResolver.
func NewDueResolver() *DueResolver {
	return &DueResolver{}
}

// DueDate resolves the due date of the occurrence that appeared on
// appearance under rule. The result is never before the appearance date.
func (r *DueResolver) DueDate(task model.MasterTask, rule model.FrequencyRule, appearance civil.Date, hol HolidayChecker) (civil.Date, error) {
	switch rule.Kind {
	case model.FrequencyOnceOff:
		if task.DueDate == nil {
			return civil.Date{}, ErrMissingDueDate
		}
		return *task.DueDate, nil

	case model.FrequencyEveryDay, model.FrequencyWeekday:
		return appearance, nil

	case model.FrequencyOnceWeekly:
		return weekEndCutoff(appearance, hol), nil

	case model.FrequencyStartOfMonth:
		due := addWorkdays(appearance, 5, hol)
		if hol.IsHoliday(due) {
			due = nextWorkday(due, hol)
		}
		return due, nil

	case model.FrequencyOnceMonthly, model.FrequencyEndOfMonth:
		return monthEndCutoff(appearance, hol), nil

	default:
		return civil.Date{}, ErrUnsupportedRule
	}
}

// DueTime resolves the wall-clock due time: the task's override when set,
// else the default for its timing category.
func (r *DueResolver) DueTime(task model.MasterTask) civil.TimeOfDay {
	if task.DueTime != nil {
		return *task.DueTime
	}
	if t, ok := defaultDueTimes[task.Timing]; ok {
		return t
	}
	return defaultDueTimes[model.TimingAnytime]
}
