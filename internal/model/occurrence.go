package model

import (
	"time"

	"pharmacy-ops/pkg/civil"
)

// Status is the display status of a task occurrence.
type Status string

const (
	StatusNotDue   Status = "not_due"
	StatusDueToday Status = "due_today"
	StatusOverdue  Status = "overdue"
	StatusMissed   Status = "missed" // terminal: past lock, can no longer be actioned
	StatusDone     Status = "done"   // terminal unless explicitly reverted by the caller
)

// Occurrence describes one appearance of a task on the calendar. It is
// computed fresh on every query; the engine holds no occurrence state.
// Callers may persist a snapshot as a durable instance row.
type Occurrence struct {
	TaskID         string
	AppearanceDate civil.Date
	DueDate        civil.Date
	DueTime        civil.TimeOfDay

	// LockAt is the absolute instant after which an incomplete occurrence is
	// permanently missed. Nil for OnceOff tasks, which never auto-lock.
	LockAt *time.Time

	Status Status
}

// CompletionState is the caller-tracked completion flag for an occurrence.
type CompletionState struct {
	Done bool
	At   *time.Time
}
