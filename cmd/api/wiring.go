package main

import (
	"context"

	"pharmacy-ops/config"
	"pharmacy-ops/internal/dashboard"
	"pharmacy-ops/internal/holiday"
	holidayMemory "pharmacy-ops/internal/holiday/memory"
	"pharmacy-ops/internal/model"
	"pharmacy-ops/internal/recurrence"
	scheduleHTTP "pharmacy-ops/internal/schedule/delivery/http"
	scheduleMemory "pharmacy-ops/internal/schedule/repository/memory"
	scheduleUC "pharmacy-ops/internal/schedule/usecase"
	"pharmacy-ops/pkg/civil"
	"pharmacy-ops/pkg/datemath"
	"pharmacy-ops/pkg/log"
)

type scheduleDomain struct {
	handler scheduleHTTP.Handler
}

// newHolidayStore builds the in-memory holiday store from static config
// entries. Malformed dates are skipped with a warning.
func newHolidayStore(ctx context.Context, logger log.Logger, cfg *config.Config) *holidayMemory.Store {
	entries := make([]model.HolidayEntry, 0, len(cfg.Holidays.Entries))
	for _, e := range cfg.Holidays.Entries {
		d, err := civil.ParseDate(e.Date)
		if err != nil {
			logger.Warnf(ctx, "Skipping holiday entry %q: %v", e.Date, err)
			continue
		}
		entries = append(entries, model.HolidayEntry{
			Date:   d,
			Region: cfg.Holidays.Region,
			Name:   e.Name,
		})
	}
	logger.Infof(ctx, "Holiday store seeded with %d static entries", len(entries))
	return holidayMemory.New(entries)
}

// buildScheduleDomain wires the recurrence engine, task definitions and the
// schedule usecase behind the HTTP handler.
func buildScheduleDomain(ctx context.Context, logger log.Logger, cfg *config.Config, clock civil.Clock, holidayStore *holidayMemory.Store) (*scheduleDomain, error) {
	tasks, err := scheduleMemory.LoadTasksFile(cfg.Tasks.File)
	if err != nil {
		return nil, err
	}
	logger.Infof(ctx, "Loaded %d master tasks from %s", len(tasks), cfg.Tasks.File)

	engine := recurrence.New(logger, clock.Location())
	resolver := holiday.NewResolver(logger, holidayStore)
	store := scheduleMemory.New(tasks)

	uc := scheduleUC.New(logger, engine, store, resolver, cfg.Holidays.Region, clock)
	kpis := dashboard.New(logger, uc, cfg.Dashboard.CacheTTL, cfg.Dashboard.CacheSize)

	return &scheduleDomain{
		handler: scheduleHTTP.New(logger, uc, kpis, datemath.NewParser(clock)),
	}, nil
}
