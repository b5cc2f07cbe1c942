package model

import (
	"time"

	"pharmacy-ops/pkg/civil"
)

// FrequencyKind identifies a recurrence pattern family. Exhaustive: every
// switch over FrequencyKind must handle all values.
type FrequencyKind int

const (
	FrequencyUnknown FrequencyKind = iota
	FrequencyOnceOff
	FrequencyEveryDay
	FrequencyOnceWeekly
	FrequencyWeekday
	FrequencyOnceMonthly
	FrequencyStartOfMonth
	FrequencyEndOfMonth
)

var frequencyNames = map[FrequencyKind]string{
	FrequencyOnceOff:      "once_off",
	FrequencyEveryDay:     "every_day",
	FrequencyOnceWeekly:   "once_weekly",
	FrequencyWeekday:      "weekday",
	FrequencyOnceMonthly:  "once_monthly",
	FrequencyStartOfMonth: "start_of_month",
	FrequencyEndOfMonth:   "end_of_month",
}

func (k FrequencyKind) String() string {
	if name, ok := frequencyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseFrequencyKind maps a stored rule name to its kind. Unrecognized names
// map to FrequencyUnknown; the evaluator treats those as "never appears".
func ParseFrequencyKind(s string) FrequencyKind {
	for k, name := range frequencyNames {
		if name == s {
			return k
		}
	}
	return FrequencyUnknown
}

// FrequencyRule is one recurrence rule on a task. A task may hold several;
// it appears on a date if any rule matches.
type FrequencyRule struct {
	Kind FrequencyKind

	// Weekday is the target day for FrequencyWeekday rules (Monday-Saturday).
	Weekday time.Weekday

	// Months restricts StartOfMonth/EndOfMonth rules to the listed months.
	// Empty means every month.
	Months []time.Month
}

// AppliesToMonth reports whether the rule's month filter admits m.
func (r FrequencyRule) AppliesToMonth(m time.Month) bool {
	if len(r.Months) == 0 {
		return true
	}
	for _, fm := range r.Months {
		if fm == m {
			return true
		}
	}
	return false
}

// TimingCategory groups tasks by when in the trading day they fall due.
// Each category carries a default due time, overridable per task.
type TimingCategory string

const (
	TimingOpening      TimingCategory = "opening"
	TimingAnytime      TimingCategory = "anytime"
	TimingBeforeCutoff TimingCategory = "before_cutoff"
	TimingClosing      TimingCategory = "closing"
)

// PublishStatus controls whether a task definition is live.
type PublishStatus string

const (
	PublishActive   PublishStatus = "active"
	PublishDraft    PublishStatus = "draft"
	PublishInactive PublishStatus = "inactive"
)

// MasterTask is an immutable-per-evaluation task definition. The engine never
// mutates it; completion state lives with the caller.
type MasterTask struct {
	ID    string
	Title string
	Rules []FrequencyRule

	Timing  TimingCategory
	DueTime *civil.TimeOfDay // overrides the category default when set

	// DueDate is the admin-set due date; only OnceOff rules consult it.
	DueDate *civil.Date

	Publish     PublishStatus
	PublishFrom *civil.Date // task is invisible before this date

	// Validity window; nil bounds are open-ended.
	ValidFrom  *civil.Date
	ValidUntil *civil.Date
}

// Visible reports whether the definition is live on the given date,
// independent of any frequency rule: active, past its publish delay, and
// inside its validity window.
func (t MasterTask) Visible(date civil.Date) bool {
	if t.Publish != PublishActive {
		return false
	}
	if t.PublishFrom != nil && date.Before(*t.PublishFrom) {
		return false
	}
	if t.ValidFrom != nil && date.Before(*t.ValidFrom) {
		return false
	}
	if t.ValidUntil != nil && date.After(*t.ValidUntil) {
		return false
	}
	return true
}
