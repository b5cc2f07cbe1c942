package model

import "pharmacy-ops/pkg/civil"

// HolidayEntry is one non-working day in a region's calendar. Read-only
// reference data supplied to the engine per evaluation.
type HolidayEntry struct {
	Date   civil.Date
	Region string
	Name   string
}
