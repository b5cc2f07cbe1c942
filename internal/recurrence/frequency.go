package recurrence

import (
	"context"
	"time"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/pkg/civil"
	"pharmacy-ops/pkg/log"
)

// Evaluator decides whether an instance of a task exists ("appears") on a
// candidate date. Pure: same inputs always give the same answer.
type Evaluator struct {
	l log.Logger
}

// NewEvaluator creates a FrequencyEvaluator.
func NewEvaluator(l log.Logger) *Evaluator {
	return &Evaluator{l: l}
}

// Appears reports whether rule produces an appearance of task on date.
// A malformed rule never appears; it is logged and the task's other rules
// are unaffected.
func (ev *Evaluator) Appears(ctx context.Context, task model.MasterTask, rule model.FrequencyRule, date civil.Date, hol HolidayChecker) bool {
	switch rule.Kind {
	case model.FrequencyOnceOff:
		if task.DueDate == nil {
			ev.l.Warnf(ctx, "task %s: once_off rule without an admin due date, treating as never due", task.ID)
			return false
		}
		return !date.Before(*task.DueDate)

	case model.FrequencyEveryDay:
		return isWorkday(date, hol)

	case model.FrequencyOnceWeekly:
		app, ok := weeklyAppearance(date.WeekMonday(), hol)
		return ok && date.Equal(app)

	case model.FrequencyWeekday:
		if rule.Weekday < time.Monday || rule.Weekday > time.Saturday {
			ev.l.Warnf(ctx, "task %s: weekday rule with invalid day %v, treating as never due", task.ID, rule.Weekday)
			return false
		}
		// A forward shift can spill an appearance past its own week's
		// Saturday, so the previous week's appearance is checked too.
		if app := weekdayAppearance(date.WeekMonday(), rule.Weekday, hol); date.Equal(app) {
			return true
		}
		prev := weekdayAppearance(date.WeekMonday().AddDays(-7), rule.Weekday, hol)
		return date.Equal(prev)

	case model.FrequencyOnceMonthly:
		return date.Equal(monthStartAppearance(date.FirstOfMonth(), hol))

	case model.FrequencyStartOfMonth:
		return rule.AppliesToMonth(date.Month) &&
			date.Equal(monthStartAppearance(date.FirstOfMonth(), hol))

	case model.FrequencyEndOfMonth:
		return rule.AppliesToMonth(date.Month) &&
			date.Equal(monthEndMondayAppearance(date.FirstOfMonth(), hol))

	default:
		ev.l.Warnf(ctx, "task %s: unsupported frequency rule %v, treating as never due", task.ID, rule.Kind)
		return false
	}
}

// weeklyAppearance resolves the once-weekly appearance for the week starting
// at weekMonday: the Monday itself, or the first workday strictly after it
// within the same week when the Monday is a holiday. A fully blocked week
// has no appearance.
func weeklyAppearance(weekMonday civil.Date, hol HolidayChecker) (civil.Date, bool) {
	if !hol.IsHoliday(weekMonday) {
		return weekMonday, true
	}
	return firstWorkdayBetween(weekMonday.AddDays(1), weekMonday.AddDays(5), hol)
}

// weekdayAppearance resolves the appearance of a Weekday(target) rule for
// the week starting at weekMonday. When the natural date is a holiday the
// nearest earlier workday in the same week stands in; with no earlier
// candidate (or target = Monday) the shift runs forward instead. Exactly one
// of the two directions wins.
func weekdayAppearance(weekMonday civil.Date, target time.Weekday, hol HolidayChecker) civil.Date {
	natural := weekMonday.AddDays(int(target - time.Monday))
	if !hol.IsHoliday(natural) {
		return natural
	}
	if target != time.Monday {
		if stand, ok := latestWorkdayBetween(weekMonday, natural.AddDays(-1), hol); ok {
			return stand
		}
	}
	return nextWorkday(natural, hol)
}

// monthStartAppearance resolves the effective first business day of the
// month starting at first: the 1st when it is a Mon-Fri workday, otherwise
// the first Monday on/after the 1st, itself pushed to the next workday when
// that Monday is a holiday. A Saturday 1st does not qualify even though
// Saturday is a trading day: month-start work waits for the Monday.
func monthStartAppearance(first civil.Date, hol HolidayChecker) civil.Date {
	if first.Weekday() != time.Saturday && isWorkday(first, hol) {
		return first
	}
	mon := first
	for mon.Weekday() != time.Monday {
		mon = mon.AddDays(1)
	}
	if !hol.IsHoliday(mon) {
		return mon
	}
	return nextWorkday(mon, hol)
}

// monthEndMondayAppearance resolves the effective last Monday of the month
// starting at first: the latest Monday leaving at least five Mon-Sat days
// before month end, pushed to the next workday when it is a holiday.
func monthEndMondayAppearance(first civil.Date, hol HolidayChecker) civil.Date {
	last := first.LastOfMonth()
	mon := last
	for mon.Weekday() != time.Monday {
		mon = mon.AddDays(-1)
	}
	for mon.After(first) && weekdaysAfter(mon, last) < 5 {
		mon = mon.AddDays(-7)
	}
	if isWorkday(mon, hol) {
		return mon
	}
	return nextWorkday(mon, hol)
}
