package repository

import (
	"context"

	"github.com/sainikartavya76-gif/aidconnect-now/domain"
)

type EmergencyFilter struct {
	Status domain.EmergencyStatus
	Type   string
	Skill  string
}

// EmergencyRepository owns the emergency collection and the cross-collection
// assignment commit. Assign must be a single atomic unit: it verifies the
// emergency is still pending, marks it assigned, and stores the task, or does
// none of it.
type EmergencyRepository interface {
	GetByID(ctx context.Context, id string) (*domain.EmergencyRequest, error)
	List(ctx context.Context, filter EmergencyFilter) ([]domain.EmergencyRequest, error)
	Create(ctx context.Context, emergency *domain.EmergencyRequest) (*domain.EmergencyRequest, error)
	Assign(ctx context.Context, emergencyID string, task *domain.Task) (*domain.Task, error)
	Resolve(ctx context.Context, id string) (*domain.EmergencyRequest, error)
}
