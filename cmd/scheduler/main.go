package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pharmacy-ops/config"
	"pharmacy-ops/internal/holiday"
	holidayMemory "pharmacy-ops/internal/holiday/memory"
	"pharmacy-ops/internal/model"
	"pharmacy-ops/internal/recurrence"
	"pharmacy-ops/internal/schedule"
	scheduleMemory "pharmacy-ops/internal/schedule/repository/memory"
	scheduleUC "pharmacy-ops/internal/schedule/usecase"
	"pharmacy-ops/pkg/civil"
	"pharmacy-ops/pkg/log"
)

// The scheduler binary runs the two background jobs on a fixed interval:
// materialize instances a few days ahead, then refresh the status of every
// open instance against the clock.
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Pharmacy Ops Scheduler...")
	logger.Infof(ctx, "Interval: %s, materialize ahead: %d days", cfg.Scheduler.Interval, cfg.Scheduler.MaterializeAheadDays)

	// 3. Operating clock
	clock, err := civil.NewClock(cfg.Time.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid timezone %q: %v", cfg.Time.Timezone, err)
	}

	// 4. Schedule domain
	entries := make([]model.HolidayEntry, 0, len(cfg.Holidays.Entries))
	for _, e := range cfg.Holidays.Entries {
		d, perr := civil.ParseDate(e.Date)
		if perr != nil {
			logger.Warnf(ctx, "Skipping holiday entry %q: %v", e.Date, perr)
			continue
		}
		entries = append(entries, model.HolidayEntry{Date: d, Region: cfg.Holidays.Region, Name: e.Name})
	}

	tasks, err := scheduleMemory.LoadTasksFile(cfg.Tasks.File)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load task definitions: %v", err)
	}
	logger.Infof(ctx, "Loaded %d master tasks from %s", len(tasks), cfg.Tasks.File)

	engine := recurrence.New(logger, clock.Location())
	resolver := holiday.NewResolver(logger, holidayMemory.New(entries))
	uc := scheduleUC.New(logger, engine, scheduleMemory.New(tasks), resolver, cfg.Holidays.Region, clock)

	// 5. Job loop: run once at startup, then on every tick.
	runJobs(ctx, logger, uc, clock, cfg.Scheduler.MaterializeAheadDays)

	ticker := time.NewTicker(cfg.Scheduler.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(context.Background(), "Pharmacy Ops Scheduler stopped")
			return
		case <-ticker.C:
			runJobs(ctx, logger, uc, clock, cfg.Scheduler.MaterializeAheadDays)
		}
	}
}

func runJobs(ctx context.Context, logger log.Logger, uc schedule.UseCase, clock civil.Clock, aheadDays int) {
	today := clock.Today()

	mat, err := uc.Materialize(ctx, schedule.MaterializeInput{
		From: today,
		To:   today.AddDays(aheadDays),
	})
	if err != nil {
		logger.Errorf(ctx, "Materialize pass failed: %v", err)
	} else {
		logger.Infof(ctx, "Materialize pass: %d days, %d evaluated, %d created", mat.Days, mat.Evaluated, mat.Created)
	}

	ref, err := uc.RefreshStatuses(ctx)
	if err != nil {
		logger.Errorf(ctx, "Status refresh failed: %v", err)
		return
	}
	logger.Infof(ctx, "Status refresh: %d scanned, %d changed", ref.Scanned, ref.Changed)
}
