package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sainikartavya76-gif/aidconnect-now/domain"
	"github.com/sainikartavya76-gif/aidconnect-now/repository"
)

// UseCase performs assignment commits and task lifecycle transitions.
type UseCase struct {
	volunteers  repository.VolunteerRepository
	emergencies repository.EmergencyRepository
	tasks       repository.TaskRepository
	logger      *zap.Logger
}

func New(volunteers repository.VolunteerRepository, emergencies repository.EmergencyRepository, tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		volunteers:  volunteers,
		emergencies: emergencies,
		tasks:       tasks,
		logger:      logger,
	}
}

// Assign binds the volunteer to a pending emergency. The repository commits
// the status flip and the task creation as one unit, so a second call against
// the same emergency fails with ErrEmergencyNotPending instead of producing a
// second task.
func (uc *UseCase) Assign(ctx context.Context, emergencyID, volunteerID string) (*domain.Task, error) {
	volunteer, err := uc.volunteers.GetByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	if !volunteer.Available {
		return nil, domain.ErrVolunteerUnavailable
	}

	now := time.Now()
	task := &domain.Task{
		ID:            uuid.NewString(),
		VolunteerID:   volunteer.ID,
		VolunteerName: volunteer.Name,
		Status:        domain.TaskAssigned,
		AssignedAt:    now,
		UpdatedAt:     now,
	}

	created, err := uc.emergencies.Assign(ctx, emergencyID, task)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeConflict) {
			uc.logger.Warn("assignment rejected",
				zap.String("emergency_id", emergencyID),
				zap.String("volunteer_id", volunteerID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	uc.logger.Info("volunteer assigned",
		zap.String("emergency_id", emergencyID),
		zap.String("volunteer_id", volunteerID),
		zap.String("task_id", created.ID),
	)
	return created, nil
}

// AdvanceTask moves a task one step along assigned -> in-progress ->
// completed. Advancing a completed task is a no-op.
func (uc *UseCase) AdvanceTask(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := uc.tasks.Advance(ctx, taskID, time.Now())
	if err != nil {
		return nil, err
	}
	uc.logger.Info("task status",
		zap.String("task_id", task.ID),
		zap.String("status", string(task.Status)),
	)
	return task, nil
}

// ResolveEmergency closes out an assigned emergency.
func (uc *UseCase) ResolveEmergency(ctx context.Context, emergencyID string) (*domain.EmergencyRequest, error) {
	emergency, err := uc.emergencies.Resolve(ctx, emergencyID)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("emergency resolved", zap.String("emergency_id", emergency.ID))
	return emergency, nil
}

// ListTasks returns tasks matching the filter in assignment order.
func (uc *UseCase) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return uc.tasks.List(ctx, filter)
}

// GetTask returns one task by id.
func (uc *UseCase) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}
