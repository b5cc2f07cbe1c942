package usecase

import (
	"context"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/internal/recurrence"
	"pharmacy-ops/pkg/civil"
)

// carryLookbackDays bounds the backward scan for a live appearance. The
// longest carry window is a StartOfMonth occurrence living to its month-end
// Saturday, well under this bound.
const carryLookbackDays = 45

// holidayPaddingDays widens holiday-set resolution so cutoff and due-date
// arithmetic near the range edges never misses a shift.
const holidayPaddingDays = 70

// liveAppearance finds the appearance date whose occurrence is still live on
// date: the most recent appearance at or before date that carries through to
// it. A newer appearance always supersedes an older one, so the backward
// scan stops at the first appearance found.
func (uc *implUseCase) liveAppearance(ctx context.Context, task model.MasterTask, date civil.Date, hol recurrence.HolidayChecker) (civil.Date, bool) {
	for i := 0; i <= carryLookbackDays; i++ {
		cand := date.AddDays(-i)
		if !uc.engine.IsDue(ctx, task, cand, hol) {
			continue
		}
		return cand, uc.engine.Carries(ctx, task, cand, date, hol)
	}
	return civil.Date{}, false
}

// completionFor reads the caller-tracked completion state of an occurrence,
// defaulting to not-done when no instance row exists yet.
func (uc *implUseCase) completionFor(ctx context.Context, taskID string, appearance civil.Date) model.CompletionState {
	inst, err := uc.repo.GetInstance(ctx, taskID, appearance)
	if err != nil {
		return model.CompletionState{}
	}
	return inst.Completion()
}
