package holiday

import (
	"context"

	"pharmacy-ops/pkg/civil"
	"pharmacy-ops/pkg/log"
)

// Resolver turns the fallible Repository into the pre-resolved Set the
// engine consumes. An unavailable calendar fails open: evaluation proceeds
// as if no holidays were defined for the range, with a logged warning,
// rather than aborting generation.
type Resolver struct {
	l    log.Logger
	repo Repository
}

// NewResolver creates a Resolver.
func NewResolver(l log.Logger, repo Repository) *Resolver {
	return &Resolver{l: l, repo: repo}
}

// Resolve fetches the holiday set for region over [from, to].
func (r *Resolver) Resolve(ctx context.Context, region string, from, to civil.Date) *Set {
	entries, err := r.repo.ListHolidays(ctx, region, from, to)
	if err != nil {
		r.l.Warnf(ctx, "holiday calendar unavailable for %s (%s..%s), proceeding without holidays: %v",
			region, from, to, err)
		return NewSet(region, nil)
	}
	return NewSet(region, entries)
}
