package usecase

import (
	"context"
	"sort"

	"pharmacy-ops/internal/schedule"
)

// DayChecklist computes the live task list for one civil date. Occurrences
// are computed fresh from the engine on every call; the instance store is
// consulted only for completion state.
func (uc *implUseCase) DayChecklist(ctx context.Context, input schedule.DayChecklistInput) (schedule.DayChecklistOutput, error) {
	date := input.Date
	if date.IsZero() {
		date = uc.clock.Today()
	}

	hol := uc.holidays.Resolve(ctx, uc.region,
		date.AddDays(-holidayPaddingDays), date.AddDays(holidayPaddingDays))

	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		return schedule.DayChecklistOutput{}, err
	}

	now := uc.clock.Now()
	items := make([]schedule.ChecklistItem, 0, len(tasks))

	for _, task := range tasks {
		appearance, ok := uc.liveAppearance(ctx, task, date, hol)
		if !ok {
			continue
		}

		occ, occErr := uc.engine.ResolveOccurrence(ctx, task, appearance, hol)
		if occErr != nil {
			uc.l.Warnf(ctx, "task %s: cannot resolve occurrence on %s: %v", task.ID, appearance, occErr)
			continue
		}

		occ.Status = uc.engine.CurrentStatus(occ, uc.completionFor(ctx, task.ID, appearance), now)

		items = append(items, schedule.ChecklistItem{
			TaskID:     task.ID,
			Title:      task.Title,
			Timing:     task.Timing,
			Occurrence: occ,
			Status:     occ.Status,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if a, b := items[i].Occurrence.DueTime.Minutes(), items[j].Occurrence.DueTime.Minutes(); a != b {
			return a < b
		}
		return items[i].Title < items[j].Title
	})

	return schedule.DayChecklistOutput{Date: date, Items: items}, nil
}
