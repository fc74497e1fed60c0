package bolt

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	bbolt "go.etcd.io/bbolt"

	"github.com/sainikartavya76-gif/aidconnect-now/domain"
	"github.com/sainikartavya76-gif/aidconnect-now/internal/infrastructure/store"
	"github.com/sainikartavya76-gif/aidconnect-now/repository"
)

type emergencyRepository struct {
	store *store.Store
}

// NewEmergencyRepository returns a Bolt-backed implementation of EmergencyRepository.
func NewEmergencyRepository(st *store.Store) repository.EmergencyRepository {
	return &emergencyRepository{store: st}
}

func (r *emergencyRepository) GetByID(ctx context.Context, id string) (*domain.EmergencyRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var emergency *domain.EmergencyRequest
	err := r.store.View(func(tx *bbolt.Tx) error {
		e, err := readEmergency(tx, id)
		if err != nil {
			return err
		}
		emergency = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return emergency, nil
}

func (r *emergencyRepository) List(ctx context.Context, filter repository.EmergencyFilter) ([]domain.EmergencyRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var emergencies []domain.EmergencyRequest
	err := r.store.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(store.BucketEmergencies)).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var emergency domain.EmergencyRequest
			if err := json.Unmarshal(v, &emergency); err != nil {
				continue
			}
			if filter.Status != "" && emergency.Status != filter.Status {
				continue
			}
			if filter.Type != "" && emergency.Type != filter.Type {
				continue
			}
			if filter.Skill != "" && emergency.Skill != filter.Skill {
				continue
			}
			emergencies = append(emergencies, emergency)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// newest first
	sort.SliceStable(emergencies, func(i, j int) bool {
		if emergencies[i].CreatedAt.Equal(emergencies[j].CreatedAt) {
			return emergencies[i].ID < emergencies[j].ID
		}
		return emergencies[i].CreatedAt.After(emergencies[j].CreatedAt)
	})
	return emergencies, nil
}

func (r *emergencyRepository) Create(ctx context.Context, emergency *domain.EmergencyRequest) (*domain.EmergencyRequest, error) {
	if emergency == nil {
		return nil, domain.ErrInvalidPayload
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if emergency.ID == "" {
		emergency.ID = uuid.NewString()
	}
	if emergency.Status == "" {
		emergency.Status = domain.EmergencyPending
	}
	if emergency.Version == 0 {
		emergency.Version = 1
	}
	if emergency.CreatedAt.IsZero() {
		emergency.CreatedAt = time.Now()
	}
	err := r.store.Update(func(tx *bbolt.Tx) error {
		return putRecord(tx, store.BucketEmergencies, emergency.ID, emergency)
	})
	if err != nil {
		return nil, err
	}
	return emergency, nil
}

// Assign commits the assignment as one write transaction: the emergency must
// still be pending when the transaction runs, otherwise nothing is written.
// Bolt serializes writers, so two racing assignments against the same
// emergency cannot both pass the status check.
func (r *emergencyRepository) Assign(ctx context.Context, emergencyID string, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	err := r.store.Update(func(tx *bbolt.Tx) error {
		emergency, err := readEmergency(tx, emergencyID)
		if err != nil {
			return err
		}
		if !emergency.IsPending() {
			return domain.ErrEmergencyNotPending
		}

		emergency.Status = domain.EmergencyAssigned
		emergency.Version++

		if task.ID == "" {
			task.ID = uuid.NewString()
		}
		if task.Status == "" {
			task.Status = domain.TaskAssigned
		}
		now := time.Now()
		if task.AssignedAt.IsZero() {
			task.AssignedAt = now
		}
		if task.UpdatedAt.IsZero() {
			task.UpdatedAt = task.AssignedAt
		}
		// snapshot the emergency as of this moment
		task.EmergencyID = emergency.ID
		task.EmergencyType = emergency.TypeLabel
		task.Location = emergency.Location

		if err := putRecord(tx, store.BucketEmergencies, emergency.ID, emergency); err != nil {
			return err
		}
		return putRecord(tx, store.BucketTasks, task.ID, task)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *emergencyRepository) Resolve(ctx context.Context, id string) (*domain.EmergencyRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var resolved *domain.EmergencyRequest
	err := r.store.Update(func(tx *bbolt.Tx) error {
		emergency, err := readEmergency(tx, id)
		if err != nil {
			return err
		}
		if !emergency.Status.CanTransitionTo(domain.EmergencyResolved) {
			return domain.ErrEmergencyNotAssigned
		}
		emergency.Status = domain.EmergencyResolved
		emergency.Version++
		resolved = emergency
		return putRecord(tx, store.BucketEmergencies, emergency.ID, emergency)
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

func readEmergency(tx *bbolt.Tx, id string) (*domain.EmergencyRequest, error) {
	raw := tx.Bucket([]byte(store.BucketEmergencies)).Get([]byte(id))
	if raw == nil {
		return nil, domain.ErrEmergencyNotFound
	}
	var emergency domain.EmergencyRequest
	if err := json.Unmarshal(raw, &emergency); err != nil {
		return nil, domain.ErrEmergencyNotFound
	}
	return &emergency, nil
}
