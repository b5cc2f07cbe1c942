package model

import (
	"time"

	"pharmacy-ops/pkg/civil"
)

// TaskInstance is the durable snapshot of an Occurrence that the
// materializer persists. The engine itself never touches these rows; they
// exist so reporting and completion tracking have something stable to hang
// off.
type TaskInstance struct {
	ID     string
	TaskID string

	AppearanceDate civil.Date
	DueDate        civil.Date
	DueTime        civil.TimeOfDay
	LockAt         *time.Time

	Status Status
	Done   bool
	DoneAt *time.Time
}

// Occurrence rebuilds the engine-level occurrence from the stored snapshot.
func (i TaskInstance) Occurrence() Occurrence {
	return Occurrence{
		TaskID:         i.TaskID,
		AppearanceDate: i.AppearanceDate,
		DueDate:        i.DueDate,
		DueTime:        i.DueTime,
		LockAt:         i.LockAt,
		Status:         i.Status,
	}
}

// Completion returns the caller-tracked completion state of the instance.
func (i TaskInstance) Completion() CompletionState {
	return CompletionState{Done: i.Done, At: i.DoneAt}
}
