package usecase

import (
	"context"

	"pharmacy-ops/internal/schedule"
	"pharmacy-ops/internal/schedule/repository"
)

// Materialize persists one durable instance per (visible task x appearance
// date) across the range. The engine's determinism plus the store's upsert
// by (task, appearance date) make re-runs no-ops.
func (uc *implUseCase) Materialize(ctx context.Context, input schedule.MaterializeInput) (schedule.MaterializeOutput, error) {
	if input.From.IsZero() || input.To.IsZero() || input.To.Before(input.From) {
		return schedule.MaterializeOutput{}, schedule.ErrInvalidDateRange
	}

	hol := uc.holidays.Resolve(ctx, uc.region,
		input.From.AddDays(-holidayPaddingDays), input.To.AddDays(holidayPaddingDays))

	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		return schedule.MaterializeOutput{}, err
	}

	var out schedule.MaterializeOutput
	for date := input.From; !date.After(input.To); date = date.AddDays(1) {
		out.Days++
		for _, task := range tasks {
			out.Evaluated++
			if !uc.engine.IsDue(ctx, task, date, hol) {
				continue
			}

			occ, occErr := uc.engine.ResolveOccurrence(ctx, task, date, hol)
			if occErr != nil {
				uc.l.Warnf(ctx, "task %s: cannot resolve occurrence on %s: %v", task.ID, date, occErr)
				continue
			}

			created, upErr := uc.repo.UpsertInstance(ctx, repository.UpsertInstanceOptions{Occurrence: occ})
			if upErr != nil {
				return schedule.MaterializeOutput{}, upErr
			}
			if created {
				out.Created++
			}
		}
	}

	uc.l.Infof(ctx, "materialized %d instances over %d days (%d evaluations)", out.Created, out.Days, out.Evaluated)
	return out, nil
}
