package bolt

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/sainikartavya76-gif/aidconnect-now/domain"
	"github.com/sainikartavya76-gif/aidconnect-now/internal/infrastructure/store"
	"github.com/sainikartavya76-gif/aidconnect-now/repository"
)

type taskRepository struct {
	store *store.Store
}

// NewTaskRepository returns a Bolt-backed implementation of TaskRepository.
func NewTaskRepository(st *store.Store) repository.TaskRepository {
	return &taskRepository{store: st}
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var task *domain.Task
	err := r.store.View(func(tx *bbolt.Tx) error {
		t, err := readTask(tx, id)
		if err != nil {
			return err
		}
		task = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var tasks []domain.Task
	err := r.store.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(store.BucketTasks)).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var task domain.Task
			if err := json.Unmarshal(v, &task); err != nil {
				continue
			}
			if filter.VolunteerID != "" && task.VolunteerID != filter.VolunteerID {
				continue
			}
			if filter.EmergencyID != "" && task.EmergencyID != filter.EmergencyID {
				continue
			}
			if filter.Status != "" && task.Status != filter.Status {
				continue
			}
			tasks = append(tasks, task)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// assignment order
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].AssignedAt.Equal(tasks[j].AssignedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].AssignedAt.Before(tasks[j].AssignedAt)
	})
	return tasks, nil
}

// Advance moves the task to its next lifecycle status inside one write
// transaction. A completed task is returned unchanged.
func (r *taskRepository) Advance(ctx context.Context, id string, at time.Time) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if at.IsZero() {
		at = time.Now()
	}
	var advanced *domain.Task
	err := r.store.Update(func(tx *bbolt.Tx) error {
		task, err := readTask(tx, id)
		if err != nil {
			return err
		}
		next, ok := task.Status.Next()
		if !ok {
			advanced = task
			return nil
		}
		task.Status = next
		task.UpdatedAt = at
		advanced = task
		return putRecord(tx, store.BucketTasks, task.ID, task)
	})
	if err != nil {
		return nil, err
	}
	return advanced, nil
}

func readTask(tx *bbolt.Tx, id string) (*domain.Task, error) {
	raw := tx.Bucket([]byte(store.BucketTasks)).Get([]byte(id))
	if raw == nil {
		return nil, domain.ErrTaskNotFound
	}
	var task domain.Task
	if err := json.Unmarshal(raw, &task); err != nil {
		return nil, domain.ErrTaskNotFound
	}
	return &task, nil
}
