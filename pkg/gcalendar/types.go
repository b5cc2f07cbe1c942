package gcalendar

import "time"

// ListHolidaysRequest is the input for listing public-holiday events.
// Google publishes regional holiday calendars with IDs such as
// "en.sa#holiday@group.v.calendar.google.com".
type ListHolidaysRequest struct {
	CalendarID string
	From       time.Time
	To         time.Time
	MaxResults int64
}

// Holiday is a single all-day public-holiday event.
type Holiday struct {
	Date time.Time // midnight on the holiday, in the event's calendar date
	Name string
}
