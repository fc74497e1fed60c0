package repository

import (
	"context"

	"github.com/sainikartavya76-gif/aidconnect-now/domain"
)

type VolunteerFilter struct {
	Skill     string
	City      string
	Available *bool
	Verified  *bool
}

type VolunteerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Volunteer, error)
	List(ctx context.Context, filter VolunteerFilter) ([]domain.Volunteer, error)
	Create(ctx context.Context, volunteer *domain.Volunteer) (*domain.Volunteer, error)
	Update(ctx context.Context, volunteer *domain.Volunteer) error
}
