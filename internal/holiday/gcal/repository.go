package gcal

import (
	"context"
	"fmt"
	"time"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/pkg/civil"
	"pharmacy-ops/pkg/gcalendar"
)

// Repository is a holiday repository backed by a Google public-holiday
// calendar feed. Region maps to the configured feed; a lookup for any other
// region yields no holidays.
type Repository struct {
	client     *gcalendar.Client
	calendarID string
	region     string
}

// New creates a Repository reading the given holiday calendar feed for region.
func New(client *gcalendar.Client, calendarID, region string) *Repository {
	return &Repository{client: client, calendarID: calendarID, region: region}
}

// ListHolidays returns the feed's holidays for region in [from, to].
func (r *Repository) ListHolidays(ctx context.Context, region string, from, to civil.Date) ([]model.HolidayEntry, error) {
	if region != r.region {
		return nil, nil
	}

	holidays, err := r.client.ListHolidays(ctx, gcalendar.ListHolidaysRequest{
		CalendarID: r.calendarID,
		From:       from.Midnight(time.UTC),
		To:         to.AddDays(1).Midnight(time.UTC),
	})
	if err != nil {
		return nil, fmt.Errorf("holiday feed %s: %w", r.calendarID, err)
	}

	entries := make([]model.HolidayEntry, 0, len(holidays))
	for _, h := range holidays {
		entries = append(entries, model.HolidayEntry{
			Date:   civil.DateOf(h.Date),
			Region: region,
			Name:   h.Name,
		})
	}
	return entries, nil
}
