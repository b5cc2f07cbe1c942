package usecase

import (
	"context"
	"errors"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/internal/schedule"
	"pharmacy-ops/internal/schedule/repository"
)

// Complete marks the instance of a task for an appearance date as done.
// The instance row is materialized on the fly when the occurrence exists
// but has not been persisted yet.
func (uc *implUseCase) Complete(ctx context.Context, input schedule.CompletionInput) error {
	inst, err := uc.ensureInstance(ctx, input)
	if err != nil {
		return err
	}

	now := uc.clock.Now()
	if inst.LockAt != nil && !now.Before(*inst.LockAt) {
		return schedule.ErrInstanceLocked
	}

	return uc.repo.SetCompletion(ctx, repository.SetCompletionOptions{
		TaskID:     input.TaskID,
		Appearance: input.Date,
		Done:       true,
		At:         &now,
	})
}

// Revert undoes a completion. The next status computation yields the
// instance's non-terminal status again; nothing else is forgotten.
func (uc *implUseCase) Revert(ctx context.Context, input schedule.CompletionInput) error {
	inst, err := uc.repo.GetInstance(ctx, input.TaskID, input.Date)
	if err != nil {
		if errors.Is(err, repository.ErrInstanceNotFound) {
			return schedule.ErrInstanceNotFound
		}
		return err
	}

	if inst.LockAt != nil && !uc.clock.Now().Before(*inst.LockAt) {
		return schedule.ErrInstanceLocked
	}

	return uc.repo.SetCompletion(ctx, repository.SetCompletionOptions{
		TaskID:     input.TaskID,
		Appearance: input.Date,
		Done:       false,
	})
}

// ensureInstance fetches the instance row for (task, appearance date),
// creating it from a fresh engine resolution when absent.
func (uc *implUseCase) ensureInstance(ctx context.Context, input schedule.CompletionInput) (model.TaskInstance, error) {
	inst, err := uc.repo.GetInstance(ctx, input.TaskID, input.Date)
	if err == nil {
		return inst, nil
	}
	if !errors.Is(err, repository.ErrInstanceNotFound) {
		return model.TaskInstance{}, err
	}

	task, taskErr := uc.repo.GetTask(ctx, input.TaskID)
	if taskErr != nil {
		if errors.Is(taskErr, repository.ErrTaskNotFound) {
			return model.TaskInstance{}, schedule.ErrTaskNotFound
		}
		return model.TaskInstance{}, taskErr
	}

	hol := uc.holidays.Resolve(ctx, uc.region,
		input.Date.AddDays(-holidayPaddingDays), input.Date.AddDays(holidayPaddingDays))

	occ, occErr := uc.engine.ResolveOccurrence(ctx, task, input.Date, hol)
	if occErr != nil {
		return model.TaskInstance{}, schedule.ErrNoOccurrenceOnDate
	}

	if _, upErr := uc.repo.UpsertInstance(ctx, repository.UpsertInstanceOptions{Occurrence: occ}); upErr != nil {
		return model.TaskInstance{}, upErr
	}
	return uc.repo.GetInstance(ctx, input.TaskID, input.Date)
}
