package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pharmacy-ops/config"
	holidayGcal "pharmacy-ops/internal/holiday/gcal"
	holidayMemory "pharmacy-ops/internal/holiday/memory"
	"pharmacy-ops/internal/httpserver"
	"pharmacy-ops/pkg/civil"
	"pharmacy-ops/pkg/gcalendar"
	"pharmacy-ops/pkg/log"
)

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

	logger.Info(ctx, "Starting Pharmacy Ops API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s, holiday region: %s", cfg.Time.Timezone, cfg.Holidays.Region)

	// 3. Operating clock. An unknown timezone is a hard failure: every
	// due/lock decision depends on it.
	clock, err := civil.NewClock(cfg.Time.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid timezone %q: %v", cfg.Time.Timezone, err)
	}

	// 4. Holiday calendar: static entries plus optional Google feed.
	holidayStore := newHolidayStore(ctx, logger, cfg)
	seedHolidayFeed(ctx, logger, cfg, clock, holidayStore)

	// 5. Schedule domain
	deps, err := buildScheduleDomain(ctx, logger, cfg, clock, holidayStore)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize schedule domain: %v", err)
	}

	// 6. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		ScheduleHandler: deps.handler,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server error: %v", err)
	}
	logger.Info(ctx, "Pharmacy Ops API stopped")
}

// seedHolidayFeed merges the configured Google public-holiday feed into the
// store. The feed is optional and failures are non-fatal: the engine treats an
// unknown holiday as a trading day.
func seedHolidayFeed(ctx context.Context, logger log.Logger, cfg *config.Config, clock civil.Clock, store *holidayMemory.Store) {
	if cfg.Holidays.GoogleCredentialsPath == "" || cfg.Holidays.GoogleCalendarID == "" {
		return
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Holidays.GoogleCredentialsPath)
	if err != nil {
		logger.Warnf(ctx, "Holiday feed not available (optional): %v", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return
	}

	feed := holidayGcal.New(client, cfg.Holidays.GoogleCalendarID, cfg.Holidays.Region)
	from := civil.Date{Year: clock.Today().Year, Month: 1, Day: 1}
	to := civil.Date{Year: clock.Today().Year + 1, Month: 12, Day: 31}

	entries, err := feed.ListHolidays(ctx, cfg.Holidays.Region, from, to)
	if err != nil {
		logger.Warnf(ctx, "Holiday feed fetch failed (optional): %v", err)
		return
	}
	store.Add(entries...)
	logger.Infof(ctx, "✅ Holiday feed merged: %d entries from %s", len(entries), cfg.Holidays.GoogleCalendarID)
}
