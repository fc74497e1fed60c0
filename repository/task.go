package repository

import (
	"context"
	"time"

	"github.com/sainikartavya76-gif/aidconnect-now/domain"
)

type TaskFilter struct {
	VolunteerID string
	EmergencyID string
	Status      domain.TaskStatus
}

// TaskRepository owns the task collection. Advance performs the lifecycle
// transition atomically: it moves the task to the next status and stamps the
// update time, or returns the task unchanged when the status is terminal.
type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Advance(ctx context.Context, id string, at time.Time) (*domain.Task, error)
}
