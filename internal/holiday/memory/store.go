package memory

import (
	"context"
	"sync"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/pkg/civil"
)

// Store is an in-memory holiday repository, seeded from configuration and
// optionally topped up from a remote feed at startup.
type Store struct {
	mu      sync.RWMutex
	entries []model.HolidayEntry
}

// New creates a Store seeded with the given entries.
func New(entries []model.HolidayEntry) *Store {
	return &Store{entries: entries}
}

// Add appends entries to the store, skipping duplicates by (region, date).
func (s *Store) Add(entries ...model.HolidayEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]map[civil.Date]bool, 2)
	for _, e := range s.entries {
		if seen[e.Region] == nil {
			seen[e.Region] = make(map[civil.Date]bool)
		}
		seen[e.Region][e.Date] = true
	}
	for _, e := range entries {
		if seen[e.Region][e.Date] {
			continue
		}
		if seen[e.Region] == nil {
			seen[e.Region] = make(map[civil.Date]bool)
		}
		seen[e.Region][e.Date] = true
		s.entries = append(s.entries, e)
	}
}

// ListHolidays returns holidays for region with dates in [from, to].
func (s *Store) ListHolidays(ctx context.Context, region string, from, to civil.Date) ([]model.HolidayEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.HolidayEntry
	for _, e := range s.entries {
		if e.Region != region {
			continue
		}
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
