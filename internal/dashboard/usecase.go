package dashboard

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/internal/schedule"
	"pharmacy-ops/pkg/civil"
	"pharmacy-ops/pkg/log"
)

// UseCase computes per-day KPI snapshots.
type UseCase interface {
	Snapshot(ctx context.Context, date civil.Date) (Snapshot, error)
}

// implUseCase derives snapshots from the day checklist and memoizes them in
// an expiring LRU. The cache is an explicit collaborator with an injected
// TTL, not shared module state; statuses move with the clock, so entries
// must age out.
type implUseCase struct {
	l         log.Logger
	checklist schedule.UseCase
	cache     *expirable.LRU[string, Snapshot]
}

// New creates a dashboard UseCase with the given cache TTL and size.
func New(l log.Logger, checklist schedule.UseCase, ttl time.Duration, size int) *implUseCase {
	return &implUseCase{
		l:         l,
		checklist: checklist,
		cache:     expirable.NewLRU[string, Snapshot](size, nil, ttl),
	}
}

// Snapshot returns the KPI view for date, served from cache within the TTL.
func (uc *implUseCase) Snapshot(ctx context.Context, date civil.Date) (Snapshot, error) {
	key := date.String()
	if snap, ok := uc.cache.Get(key); ok {
		return snap, nil
	}

	out, err := uc.checklist.DayChecklist(ctx, schedule.DayChecklistInput{Date: date})
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{Date: out.Date, Total: len(out.Items)}
	for _, item := range out.Items {
		switch item.Status {
		case model.StatusDone:
			snap.Done++
		case model.StatusDueToday:
			snap.DueToday++
		case model.StatusOverdue:
			snap.Overdue++
		case model.StatusMissed:
			snap.Missed++
		default:
			snap.NotDue++
		}
	}
	if snap.Total > 0 {
		snap.CompletionRate = float64(snap.Done) / float64(snap.Total)
	}

	uc.cache.Add(key, snap)
	return snap, nil
}
