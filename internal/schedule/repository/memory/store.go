package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/internal/schedule/repository"
	"pharmacy-ops/pkg/civil"
)

// Store is the in-memory schedule repository. Task definitions are seeded
// at startup; instances accumulate as the materializer runs.
type Store struct {
	mu        sync.RWMutex
	tasks     []model.MasterTask
	instances map[string]*model.TaskInstance // keyed by taskID@appearance
}

var _ repository.Repository = (*Store)(nil)

// New creates a Store seeded with the given task definitions. Tasks without
// an ID get one assigned.
func New(tasks []model.MasterTask) *Store {
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.NewString()
		}
	}
	return &Store{
		tasks:     tasks,
		instances: make(map[string]*model.TaskInstance),
	}
}

func instanceKey(taskID string, appearance civil.Date) string {
	return fmt.Sprintf("%s@%s", taskID, appearance)
}

// ListTasks returns all master task definitions.
func (s *Store) ListTasks(ctx context.Context) ([]model.MasterTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.MasterTask, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// GetTask returns one task definition by ID.
func (s *Store) GetTask(ctx context.Context, id string) (model.MasterTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.MasterTask{}, repository.ErrTaskNotFound
}

// UpsertInstance inserts a snapshot unless one exists for the same
// (task, appearance date).
func (s *Store) UpsertInstance(ctx context.Context, opt repository.UpsertInstanceOptions) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	occ := opt.Occurrence
	key := instanceKey(occ.TaskID, occ.AppearanceDate)
	if _, exists := s.instances[key]; exists {
		return false, nil
	}

	s.instances[key] = &model.TaskInstance{
		ID:             uuid.NewString(),
		TaskID:         occ.TaskID,
		AppearanceDate: occ.AppearanceDate,
		DueDate:        occ.DueDate,
		DueTime:        occ.DueTime,
		LockAt:         occ.LockAt,
		Status:         occ.Status,
	}
	return true, nil
}

// GetInstance returns the instance for (taskID, appearance).
func (s *Store) GetInstance(ctx context.Context, taskID string, appearance civil.Date) (model.TaskInstance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inst, ok := s.instances[instanceKey(taskID, appearance)]
	if !ok {
		return model.TaskInstance{}, repository.ErrInstanceNotFound
	}
	return *inst, nil
}

// ListOpenInstances returns instances that are neither done nor missed.
func (s *Store) ListOpenInstances(ctx context.Context, opt repository.ListInstancesOptions) ([]model.TaskInstance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.TaskInstance
	for _, inst := range s.instances {
		if inst.Done || inst.Status == model.StatusMissed {
			continue
		}
		if !opt.AppearedOnOrBefore.IsZero() && inst.AppearanceDate.After(opt.AppearedOnOrBefore) {
			continue
		}
		out = append(out, *inst)
	}
	return out, nil
}

// UpdateInstanceStatus overwrites the stored display status.
func (s *Store) UpdateInstanceStatus(ctx context.Context, id string, status model.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, inst := range s.instances {
		if inst.ID == id {
			inst.Status = status
			return nil
		}
	}
	return repository.ErrInstanceNotFound
}

// SetCompletion marks or reverts completion of an instance.
func (s *Store) SetCompletion(ctx context.Context, opt repository.SetCompletionOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[instanceKey(opt.TaskID, opt.Appearance)]
	if !ok {
		return repository.ErrInstanceNotFound
	}
	inst.Done = opt.Done
	inst.DoneAt = opt.At
	return nil
}
