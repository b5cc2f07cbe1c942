package recurrence

import (
	"context"

	"pharmacy-ops/pkg/civil"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// holidaySet is a fixed HolidayChecker for tests, keyed by date string.
type holidaySet map[string]bool

func (h holidaySet) IsHoliday(d civil.Date) bool { return h[d.String()] }

// holidays builds a holidaySet from "2006-01-02" strings.
func holidays(dates ...string) holidaySet {
	h := make(holidaySet, len(dates))
	for _, s := range dates {
		h[s] = true
	}
	return h
}

func d(s string) civil.Date { return civil.MustParseDate(s) }
