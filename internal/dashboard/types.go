package dashboard

import "pharmacy-ops/pkg/civil"

// Snapshot is the per-day completion KPI view reporting consumers render.
type Snapshot struct {
	Date     civil.Date `json:"date"`
	Total    int        `json:"total"`
	Done     int        `json:"done"`
	DueToday int        `json:"due_today"`
	Overdue  int        `json:"overdue"`
	Missed   int        `json:"missed"`
	NotDue   int        `json:"not_due"`

	// CompletionRate is done / total, 0 when the day holds no tasks.
	CompletionRate float64 `json:"completion_rate"`
}
