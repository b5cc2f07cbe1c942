package civil

import "fmt"

// TimeOfDay is a wall-clock time with minute precision, independent of date
// and timezone.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a "15:04" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the offset from midnight in minutes, for ordering.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}
