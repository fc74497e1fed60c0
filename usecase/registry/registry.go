package registry

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sainikartavya76-gif/aidconnect-now/domain"
	"github.com/sainikartavya76-gif/aidconnect-now/pkg/geo"
	"github.com/sainikartavya76-gif/aidconnect-now/repository"
)

// Locator resolves the caller's current position with a bounded wait.
type Locator interface {
	Current(ctx context.Context) (geo.Coordinates, error)
}

// VolunteerInput is the volunteer registration payload.
type VolunteerInput struct {
	Name        string           `validate:"required"`
	City        string           `validate:"required"`
	Skills      []string         `validate:"required,min=1,dive,required"`
	Phone       string           `validate:"omitempty"`
	Coordinates *geo.Coordinates `validate:"omitempty"`
}

// EmergencyInput is the emergency submission payload.
type EmergencyInput struct {
	Type        string           `validate:"required"`
	TypeLabel   string           `validate:"omitempty"`
	Location    string           `validate:"required"`
	Skill       string           `validate:"required"`
	Urgency     domain.Urgency   `validate:"required,oneof=low medium high"`
	Description string           `validate:"omitempty"`
	Coordinates *geo.Coordinates `validate:"omitempty"`
	ReportedBy  string           `validate:"omitempty"`
}

// UseCase handles volunteer registration and emergency intake.
type UseCase struct {
	volunteers  repository.VolunteerRepository
	emergencies repository.EmergencyRepository
	locator     Locator
	validate    *validator.Validate
	logger      *zap.Logger
}

func New(volunteers repository.VolunteerRepository, emergencies repository.EmergencyRepository, locator Locator, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		volunteers:  volunteers,
		emergencies: emergencies,
		locator:     locator,
		validate:    validator.New(),
		logger:      logger,
	}
}

// RegisterVolunteer validates the payload and stores a new volunteer. New
// registrations start available and unverified. When no coordinates are
// provided the locator is consulted; if it cannot produce a position the
// record keeps no coordinates and matching falls back to the city heuristic.
func (uc *UseCase) RegisterVolunteer(ctx context.Context, input VolunteerInput) (*domain.Volunteer, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "invalid volunteer registration", err)
	}

	coordinates := input.Coordinates
	if coordinates == nil && uc.locator != nil {
		if position, err := uc.locator.Current(ctx); err == nil {
			coordinates = &position
		} else {
			uc.logger.Warn("position unavailable, registering without coordinates", zap.Error(err))
		}
	}

	volunteer := &domain.Volunteer{
		Name:        input.Name,
		City:        input.City,
		Skills:      input.Skills,
		Phone:       input.Phone,
		Coordinates: coordinates,
		Available:   true,
		Verified:    false,
		CreatedAt:   time.Now(),
	}

	created, err := uc.volunteers.Create(ctx, volunteer)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("volunteer registered",
		zap.String("volunteer_id", created.ID),
		zap.String("city", created.City),
		zap.Strings("skills", created.Skills),
	)
	return created, nil
}

// SubmitEmergency validates the payload and logs a new pending emergency.
func (uc *UseCase) SubmitEmergency(ctx context.Context, input EmergencyInput) (*domain.EmergencyRequest, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "invalid emergency request", err)
	}

	typeLabel := input.TypeLabel
	if typeLabel == "" {
		typeLabel = input.Type
	}

	emergency := &domain.EmergencyRequest{
		Type:        input.Type,
		TypeLabel:   typeLabel,
		Location:    input.Location,
		Coordinates: input.Coordinates,
		Skill:       input.Skill,
		Urgency:     input.Urgency,
		Description: input.Description,
		ReportedBy:  input.ReportedBy,
		Status:      domain.EmergencyPending,
		CreatedAt:   time.Now(),
	}

	created, err := uc.emergencies.Create(ctx, emergency)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("emergency submitted",
		zap.String("emergency_id", created.ID),
		zap.String("skill", created.Skill),
		zap.String("urgency", string(created.Urgency)),
	)
	return created, nil
}

// SetAvailability toggles whether a volunteer is eligible for new assignments.
func (uc *UseCase) SetAvailability(ctx context.Context, id string, available bool) (*domain.Volunteer, error) {
	volunteer, err := uc.volunteers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	volunteer.Available = available
	if err := uc.volunteers.Update(ctx, volunteer); err != nil {
		return nil, err
	}
	return volunteer, nil
}

// VerifyVolunteer marks a volunteer's credentials as confirmed.
func (uc *UseCase) VerifyVolunteer(ctx context.Context, id string) (*domain.Volunteer, error) {
	volunteer, err := uc.volunteers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	volunteer.Verified = true
	if err := uc.volunteers.Update(ctx, volunteer); err != nil {
		return nil, err
	}
	uc.logger.Info("volunteer verified", zap.String("volunteer_id", id))
	return volunteer, nil
}

// ListVolunteers returns volunteers matching the filter in registration order.
func (uc *UseCase) ListVolunteers(ctx context.Context, filter repository.VolunteerFilter) ([]domain.Volunteer, error) {
	return uc.volunteers.List(ctx, filter)
}

// ListEmergencies returns emergencies matching the filter, newest first.
func (uc *UseCase) ListEmergencies(ctx context.Context, filter repository.EmergencyFilter) ([]domain.EmergencyRequest, error) {
	return uc.emergencies.List(ctx, filter)
}
