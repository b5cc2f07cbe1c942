package recurrence

import (
	"time"

	"pharmacy-ops/pkg/civil"
)

// The pharmacy trades Monday through Saturday; only Sunday is a non-trading
// day. "Workday" below always means a Mon-Sat day that is not a public
// holiday.

// maxScanDays bounds forward/backward workday scans so a degenerate holiday
// calendar cannot loop forever. Two months of consecutive non-workdays does
// not occur in real calendars.
const maxScanDays = 62

func isTradingDay(d civil.Date) bool {
	return d.Weekday() != time.Sunday
}

func isWorkday(d civil.Date, hol HolidayChecker) bool {
	return isTradingDay(d) && !hol.IsHoliday(d)
}

// nextWorkday returns the first workday strictly after d.
func nextWorkday(d civil.Date, hol HolidayChecker) civil.Date {
	cand := d
	for i := 0; i < maxScanDays; i++ {
		cand = cand.AddDays(1)
		if isWorkday(cand, hol) {
			return cand
		}
	}
	return cand
}

// prevWorkday returns the last workday strictly before d.
func prevWorkday(d civil.Date, hol HolidayChecker) civil.Date {
	cand := d
	for i := 0; i < maxScanDays; i++ {
		cand = cand.AddDays(-1)
		if isWorkday(cand, hol) {
			return cand
		}
	}
	return cand
}

// latestWorkdayBetween returns the latest workday in [lo, hi], scanning
// backward from hi. Reports false when the range holds none.
func latestWorkdayBetween(lo, hi civil.Date, hol HolidayChecker) (civil.Date, bool) {
	for cand := hi; !cand.Before(lo); cand = cand.AddDays(-1) {
		if isWorkday(cand, hol) {
			return cand, true
		}
	}
	return civil.Date{}, false
}

// firstWorkdayBetween returns the earliest workday in [lo, hi], scanning
// forward from lo. Reports false when the range holds none.
func firstWorkdayBetween(lo, hi civil.Date, hol HolidayChecker) (civil.Date, bool) {
	for cand := lo; !cand.After(hi); cand = cand.AddDays(1) {
		if isWorkday(cand, hol) {
			return cand, true
		}
	}
	return civil.Date{}, false
}

// addWorkdays returns the date n workdays after d, skipping Sundays and
// holidays while counting.
func addWorkdays(d civil.Date, n int, hol HolidayChecker) civil.Date {
	cand := d
	for i := 0; i < n; i++ {
		cand = nextWorkday(cand, hol)
	}
	return cand
}

// weekdaysAfter counts Mon-Sat days in (d, last].
func weekdaysAfter(d, last civil.Date) int {
	n := 0
	for cand := d.AddDays(1); !cand.After(last); cand = cand.AddDays(1) {
		if isTradingDay(cand) {
			n++
		}
	}
	return n
}

// weekEndCutoff is the Saturday of d's ISO week, or its holiday-shifted
// stand-in: the nearest earlier workday within the week, falling forward to
// the next workday when the whole week is blocked.
func weekEndCutoff(d civil.Date, hol HolidayChecker) civil.Date {
	sat := d.WeekSaturday()
	if isWorkday(sat, hol) {
		return sat
	}
	if stand, ok := latestWorkdayBetween(d.WeekMonday(), sat.AddDays(-1), hol); ok {
		return stand
	}
	return nextWorkday(sat, hol)
}

// monthEndCutoff is the last Saturday of d's month, or its holiday-shifted
// stand-in. The backward search is windowed to that Saturday's own week;
// when nothing earlier in the week is workable the cutoff shifts forward
// instead.
func monthEndCutoff(d civil.Date, hol HolidayChecker) civil.Date {
	sat := lastSaturday(d)
	if isWorkday(sat, hol) {
		return sat
	}
	if stand, ok := latestWorkdayBetween(sat.WeekMonday(), sat.AddDays(-1), hol); ok {
		return stand
	}
	return nextWorkday(sat, hol)
}

// lastSaturday returns the final Saturday of d's month.
func lastSaturday(d civil.Date) civil.Date {
	cand := d.LastOfMonth()
	for cand.Weekday() != time.Saturday {
		cand = cand.AddDays(-1)
	}
	return cand
}
