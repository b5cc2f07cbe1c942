package civil

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the wire/display format for civil dates.
const DateFormat = "2006-01-02"

// Date is a calendar date in the operating timezone, with no time-of-day or
// UTC instant attached. All recurrence decisions are made on Date values;
// conversion to an absolute time.Time happens only at the status boundary.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates a time.Time to the civil date in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a "2006-01-02" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate that panics on error. Test and fixture use only.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// MarshalJSON encodes the date as a "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "2006-01-02" string; empty means the zero date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" || s == (Date{}).String() {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Midnight returns 00:00 on d in the given location.
func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// At combines the date with a wall-clock time in the given location.
func (d Date) At(tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, tod.Hour, tod.Minute, 0, 0, loc)
}

// AddDays returns the date n calendar days after d (n may be negative).
// Normalization is delegated to time.Time so month/year rollover is correct.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Midnight(time.UTC).AddDate(0, 0, n))
}

// Weekday returns the day of week of d.
func (d Date) Weekday() time.Weekday {
	return d.Midnight(time.UTC).Weekday()
}

// Compare returns -1 if d is before other, 0 if equal, +1 if after.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d.Compare(other) == 0 }

// FirstOfMonth returns the 1st of d's month.
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// LastOfMonth returns the final day of d's month.
func (d Date) LastOfMonth() Date {
	return DateOf(time.Date(d.Year, d.Month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1))
}

// WeekMonday returns the Monday of d's ISO week (weeks run Mon-Sun).
func (d Date) WeekMonday() Date {
	wd := int(d.Weekday())
	if wd == 0 { // Sunday belongs to the week that started six days earlier
		wd = 7
	}
	return d.AddDays(-(wd - 1))
}

// WeekSaturday returns the Saturday of d's ISO week.
func (d Date) WeekSaturday() Date {
	return d.WeekMonday().AddDays(5)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
