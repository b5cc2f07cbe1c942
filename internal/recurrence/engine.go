package recurrence

import (
	"context"
	"time"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/pkg/civil"
	"pharmacy-ops/pkg/log"
)

// Engine is the only entry point external callers use. It composes the
// frequency evaluator, due/carry/lock resolvers and the status machine into
// pure functions of (task, date, holidays, now): no hidden state, no I/O,
// identical inputs always yield identical occurrences.
type Engine struct {
	l   log.Logger
	loc *time.Location

	eval   *Evaluator
	due    *DueResolver
	carry  *CarryResolver
	lock   *LockResolver
	status *StatusMachine
}

// New creates an Engine operating in the given civil timezone.
func New(l log.Logger, loc *time.Location) *Engine {
	return &Engine{
		l:      l,
		loc:    loc,
		eval:   NewEvaluator(l),
		due:    NewDueResolver(),
		carry:  NewCarryResolver(),
		lock:   NewLockResolver(loc),
		status: NewStatusMachine(loc),
	}
}

// Location returns the engine's operating timezone.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// IsDue reports whether an instance of task exists on date: the task must be
// visible (active, past its publish delay, inside its validity window) and
// any one of its frequency rules must match.
func (e *Engine) IsDue(ctx context.Context, task model.MasterTask, date civil.Date, hol HolidayChecker) bool {
	_, ok := e.MatchingRule(ctx, task, date, hol)
	return ok
}

// MatchingRule returns the first frequency rule producing an appearance of
// task on date. Rule matching is "any": even when several rules would match
// the same date the occurrence is singular, determined by the first match.
func (e *Engine) MatchingRule(ctx context.Context, task model.MasterTask, date civil.Date, hol HolidayChecker) (model.FrequencyRule, bool) {
	if !task.Visible(date) {
		return model.FrequencyRule{}, false
	}
	for _, rule := range task.Rules {
		if e.eval.Appears(ctx, task, rule, date, hol) {
			return rule, true
		}
	}
	return model.FrequencyRule{}, false
}

// ResolveOccurrence materializes the occurrence of task appearing on
// appearance: due date, due time and lock instant. The status field is left
// at not_due; CurrentStatus stamps the live value.
func (e *Engine) ResolveOccurrence(ctx context.Context, task model.MasterTask, appearance civil.Date, hol HolidayChecker) (model.Occurrence, error) {
	rule, ok := e.MatchingRule(ctx, task, appearance, hol)
	if !ok {
		return model.Occurrence{}, ErrNoAppearance
	}

	dueDate, err := e.due.DueDate(task, rule, appearance, hol)
	if err != nil {
		return model.Occurrence{}, err
	}

	return model.Occurrence{
		TaskID:         task.ID,
		AppearanceDate: appearance,
		DueDate:        dueDate,
		DueTime:        e.due.DueTime(task),
		LockAt:         e.lock.LockAt(rule, appearance, dueDate, hol),
		Status:         model.StatusNotDue,
	}, nil
}

// Carries reports whether the occurrence of task that appeared on appearance
// is still the live instance on current.
func (e *Engine) Carries(ctx context.Context, task model.MasterTask, appearance, current civil.Date, hol HolidayChecker) bool {
	rule, ok := e.MatchingRule(ctx, task, appearance, hol)
	if !ok {
		return false
	}
	return e.carry.Carries(task, rule, appearance, current, hol)
}

// CurrentStatus computes the display status of occ at now.
func (e *Engine) CurrentStatus(occ model.Occurrence, completion model.CompletionState, now time.Time) model.Status {
	return e.status.Current(occ, completion, now)
}
