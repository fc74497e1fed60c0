package stats

import (
	"context"

	"github.com/sainikartavya76-gif/aidconnect-now/domain"
	"github.com/sainikartavya76-gif/aidconnect-now/repository"
)

// Summary is the derived, read-only view over all three collections.
type Summary struct {
	TotalVolunteers     int `json:"total_volunteers"`
	VerifiedVolunteers  int `json:"verified_volunteers"`
	AvailableVolunteers int `json:"available_volunteers"`
	TotalEmergencies    int `json:"total_emergencies"`
	PendingEmergencies  int `json:"pending_emergencies"`
	AssignedEmergencies int `json:"assigned_emergencies"`
	ResolvedEmergencies int `json:"resolved_emergencies"`
	TotalTasks          int `json:"total_tasks"`
	ActiveTasks         int `json:"active_tasks"`
	CompletedTasks      int `json:"completed_tasks"`

	// CompletionsByVolunteer is recomputed from completed task records, not
	// read from the volunteer's own counter. The stored counter reflects
	// history from before this system tracked tasks.
	CompletionsByVolunteer map[string]int `json:"completions_by_volunteer"`
}

// UseCase computes aggregate counters. Pure reads, no mutation.
type UseCase struct {
	volunteers  repository.VolunteerRepository
	emergencies repository.EmergencyRepository
	tasks       repository.TaskRepository
}

func New(volunteers repository.VolunteerRepository, emergencies repository.EmergencyRepository, tasks repository.TaskRepository) *UseCase {
	return &UseCase{
		volunteers:  volunteers,
		emergencies: emergencies,
		tasks:       tasks,
	}
}

func (uc *UseCase) Summary(ctx context.Context) (*Summary, error) {
	volunteers, err := uc.volunteers.List(ctx, repository.VolunteerFilter{})
	if err != nil {
		return nil, err
	}
	emergencies, err := uc.emergencies.List(ctx, repository.EmergencyFilter{})
	if err != nil {
		return nil, err
	}
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{})
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalVolunteers:        len(volunteers),
		TotalEmergencies:       len(emergencies),
		TotalTasks:             len(tasks),
		CompletionsByVolunteer: make(map[string]int),
	}

	for _, v := range volunteers {
		if v.Verified {
			summary.VerifiedVolunteers++
		}
		if v.Available {
			summary.AvailableVolunteers++
		}
	}
	for _, e := range emergencies {
		switch e.Status {
		case domain.EmergencyPending:
			summary.PendingEmergencies++
		case domain.EmergencyAssigned:
			summary.AssignedEmergencies++
		case domain.EmergencyResolved:
			summary.ResolvedEmergencies++
		}
	}
	for _, t := range tasks {
		if t.Status == domain.TaskCompleted {
			summary.CompletedTasks++
			summary.CompletionsByVolunteer[t.VolunteerID]++
		} else {
			summary.ActiveTasks++
		}
	}

	return summary, nil
}
