package holiday

import (
	"context"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/pkg/civil"
)

// Repository is the data-access boundary for holiday reference data.
type Repository interface {
	// ListHolidays returns all holidays for region with dates in [from, to].
	ListHolidays(ctx context.Context, region string, from, to civil.Date) ([]model.HolidayEntry, error)
}
