package repository

import (
	"context"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/pkg/civil"
)

// Repository is the composed data-access boundary for the schedule domain.
// The relational layer behind it is an external collaborator; these
// interfaces are the contract.
type Repository interface {
	TaskRepository
	InstanceRepository
}

// TaskRepository reads master task definitions.
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]model.MasterTask, error)
	GetTask(ctx context.Context, id string) (model.MasterTask, error)
}

// InstanceRepository stores durable occurrence snapshots and their
// completion state.
type InstanceRepository interface {
	// UpsertInstance inserts the snapshot unless a row for the same
	// (task, appearance date) already exists. Reports whether a row was
	// created.
	UpsertInstance(ctx context.Context, opt UpsertInstanceOptions) (bool, error)

	GetInstance(ctx context.Context, taskID string, appearance civil.Date) (model.TaskInstance, error)
	ListOpenInstances(ctx context.Context, opt ListInstancesOptions) ([]model.TaskInstance, error)
	UpdateInstanceStatus(ctx context.Context, id string, status model.Status) error
	SetCompletion(ctx context.Context, opt SetCompletionOptions) error
}
