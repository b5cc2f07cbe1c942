package usecase

import (
	"context"

	"pharmacy-ops/internal/schedule"
	"pharmacy-ops/internal/schedule/repository"
)

// RefreshStatuses recomputes the display status of every open instance
// against the current clock and persists changes. Locked instances surface
// as missed here and drop out of future passes.
func (uc *implUseCase) RefreshStatuses(ctx context.Context) (schedule.RefreshStatusesOutput, error) {
	instances, err := uc.repo.ListOpenInstances(ctx, repository.ListInstancesOptions{
		AppearedOnOrBefore: uc.clock.Today(),
	})
	if err != nil {
		return schedule.RefreshStatusesOutput{}, err
	}

	now := uc.clock.Now()
	var out schedule.RefreshStatusesOutput

	for _, inst := range instances {
		out.Scanned++
		status := uc.engine.CurrentStatus(inst.Occurrence(), inst.Completion(), now)
		if status == inst.Status {
			continue
		}
		if err := uc.repo.UpdateInstanceStatus(ctx, inst.ID, status); err != nil {
			return schedule.RefreshStatusesOutput{}, err
		}
		out.Changed++
	}

	uc.l.Infof(ctx, "status refresh: %d scanned, %d changed", out.Scanned, out.Changed)
	return out, nil
}
