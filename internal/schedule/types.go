package schedule

import (
	"pharmacy-ops/internal/model"
	"pharmacy-ops/pkg/civil"
)

// DayChecklistInput selects the civil date to render a checklist for.
type DayChecklistInput struct {
	Date civil.Date
}

// ChecklistItem is one live task occurrence on the checklist date.
type ChecklistItem struct {
	TaskID     string
	Title      string
	Timing     model.TimingCategory
	Occurrence model.Occurrence
	Status     model.Status
}

// DayChecklistOutput is the per-day task list a calendar/checklist UI renders.
type DayChecklistOutput struct {
	Date  civil.Date
	Items []ChecklistItem
}

// MaterializeInput selects the date range to materialize instances for.
type MaterializeInput struct {
	From civil.Date
	To   civil.Date
}

// MaterializeOutput reports how many durable instance rows were created.
// Re-running over the same range creates nothing new: the engine is
// deterministic and the store upserts by (task, appearance date).
type MaterializeOutput struct {
	Days      int
	Evaluated int
	Created   int
}

// RefreshStatusesOutput reports the status-refresh pass over open instances.
type RefreshStatusesOutput struct {
	Scanned int
	Changed int
}

// CompletionInput marks or reverts completion of an instance.
type CompletionInput struct {
	TaskID string
	Date   civil.Date
}
