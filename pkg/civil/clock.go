package civil

import (
	"fmt"
	"time"
)

// Clock supplies "now" in the operating timezone. Abstracted so the engine
// and its callers can be driven by a fixed clock in tests.
type Clock interface {
	Now() time.Time
	Today() Date
	Location() *time.Location
}

// ZoneClock is the production Clock backed by the system clock and a fixed
// IANA timezone.
type ZoneClock struct {
	loc *time.Location
}

// NewClock creates a Clock for the given IANA timezone string, e.g.
// "Africa/Johannesburg". An unresolvable zone is a hard error: due/overdue
// comparisons are meaningless without a trustworthy civil timezone.
func NewClock(timezone string) (*ZoneClock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &ZoneClock{loc: loc}, nil
}

func (c *ZoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *ZoneClock) Today() Date {
	return DateOf(c.Now())
}

func (c *ZoneClock) Location() *time.Location {
	return c.loc
}

// FixedClock is a Clock pinned to a single instant. Test use.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time            { return c.Instant }
func (c FixedClock) Today() Date               { return DateOf(c.Instant) }
func (c FixedClock) Location() *time.Location  { return c.Instant.Location() }
