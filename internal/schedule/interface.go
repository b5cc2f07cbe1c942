package schedule

import "context"

// UseCase is the public interface of the schedule domain: the thin caller
// layer around the pure recurrence engine.
type UseCase interface {
	// DayChecklist computes the live task list for one civil date, including
	// occurrences carried over from earlier appearance dates.
	DayChecklist(ctx context.Context, input DayChecklistInput) (DayChecklistOutput, error)

	// Materialize persists one durable instance per (visible task x
	// appearance date) over a date range. Idempotent.
	Materialize(ctx context.Context, input MaterializeInput) (MaterializeOutput, error)

	// RefreshStatuses recomputes the display status of every open instance
	// against the current clock.
	RefreshStatuses(ctx context.Context) (RefreshStatusesOutput, error)

	// Complete marks the instance of a task for an appearance date as done.
	Complete(ctx context.Context, input CompletionInput) error

	// Revert undoes a completion; the next status computation simply yields
	// the instance's non-terminal status again.
	Revert(ctx context.Context, input CompletionInput) error
}
