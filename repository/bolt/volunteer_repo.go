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

type volunteerRepository struct {
	store *store.Store
}

// NewVolunteerRepository returns a Bolt-backed implementation of VolunteerRepository.
func NewVolunteerRepository(st *store.Store) repository.VolunteerRepository {
	return &volunteerRepository{store: st}
}

func (r *volunteerRepository) GetByID(ctx context.Context, id string) (*domain.Volunteer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var volunteer *domain.Volunteer
	err := r.store.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(store.BucketVolunteers)).Get([]byte(id))
		if raw == nil {
			return domain.ErrVolunteerNotFound
		}
		var v domain.Volunteer
		if err := json.Unmarshal(raw, &v); err != nil {
			// unreadable record, treat as absent
			return domain.ErrVolunteerNotFound
		}
		volunteer = &v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return volunteer, nil
}

func (r *volunteerRepository) List(ctx context.Context, filter repository.VolunteerFilter) ([]domain.Volunteer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var volunteers []domain.Volunteer
	err := r.store.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(store.BucketVolunteers)).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var volunteer domain.Volunteer
			if err := json.Unmarshal(v, &volunteer); err != nil {
				continue
			}
			if !matchVolunteer(&volunteer, filter) {
				continue
			}
			volunteers = append(volunteers, volunteer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// registration order; ties broken by id so results stay deterministic
	sort.SliceStable(volunteers, func(i, j int) bool {
		if volunteers[i].CreatedAt.Equal(volunteers[j].CreatedAt) {
			return volunteers[i].ID < volunteers[j].ID
		}
		return volunteers[i].CreatedAt.Before(volunteers[j].CreatedAt)
	})
	return volunteers, nil
}

func (r *volunteerRepository) Create(ctx context.Context, volunteer *domain.Volunteer) (*domain.Volunteer, error) {
	if volunteer == nil {
		return nil, domain.ErrInvalidPayload
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if volunteer.ID == "" {
		volunteer.ID = uuid.NewString()
	}
	if volunteer.CreatedAt.IsZero() {
		volunteer.CreatedAt = time.Now()
	}
	err := r.store.Update(func(tx *bbolt.Tx) error {
		return putRecord(tx, store.BucketVolunteers, volunteer.ID, volunteer)
	})
	if err != nil {
		return nil, err
	}
	return volunteer, nil
}

func (r *volunteerRepository) Update(ctx context.Context, volunteer *domain.Volunteer) error {
	if volunteer == nil || volunteer.ID == "" {
		return domain.ErrInvalidPayload
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.store.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(store.BucketVolunteers))
		if b.Get([]byte(volunteer.ID)) == nil {
			return domain.ErrVolunteerNotFound
		}
		return putRecord(tx, store.BucketVolunteers, volunteer.ID, volunteer)
	})
}

func matchVolunteer(v *domain.Volunteer, filter repository.VolunteerFilter) bool {
	if filter.Skill != "" && !v.HasSkill(filter.Skill) {
		return false
	}
	if filter.City != "" && v.City != filter.City {
		return false
	}
	if filter.Available != nil && v.Available != *filter.Available {
		return false
	}
	if filter.Verified != nil && v.Verified != *filter.Verified {
		return false
	}
	return true
}
