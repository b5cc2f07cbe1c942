package recurrence

import "pharmacy-ops/pkg/civil"

// HolidayChecker answers whether a civil date is a public holiday. The
// engine only ever consumes a pre-resolved, non-failing view; calendar I/O
// and its fail-open policy live with the holiday collaborator.
type HolidayChecker interface {
	IsHoliday(d civil.Date) bool
}

// NoHolidays is the empty calendar. Used as the fail-open fallback and in
// tests.
type NoHolidays struct{}

func (NoHolidays) IsHoliday(civil.Date) bool { return false }
