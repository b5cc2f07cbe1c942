package holiday

import (
	"time"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/pkg/civil"
)

// Set is a pre-resolved, immutable holiday lookup for one region. It is the
// non-failing view the recurrence engine consumes; building one performs all
// the I/O up front so per-evaluation lookups never re-query a store.
type Set struct {
	region string
	dates  map[civil.Date]model.HolidayEntry
}

// NewSet builds a Set from the given entries.
func NewSet(region string, entries []model.HolidayEntry) *Set {
	dates := make(map[civil.Date]model.HolidayEntry, len(entries))
	for _, e := range entries {
		dates[e.Date] = e
	}
	return &Set{region: region, dates: dates}
}

// IsHoliday reports whether d is a public holiday in the set's region.
func (s *Set) IsHoliday(d civil.Date) bool {
	_, ok := s.dates[d]
	return ok
}

// IsWeekend reports whether d falls on the non-trading day of the week.
// The pharmacy trades Monday through Saturday.
func (s *Set) IsWeekend(d civil.Date) bool {
	return d.Weekday() == time.Sunday
}

// Region returns the region the set was resolved for.
func (s *Set) Region() string {
	return s.region
}

// Len returns the number of holidays in the set.
func (s *Set) Len() int {
	return len(s.dates)
}
