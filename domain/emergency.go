package domain

import (
	"time"

	"github.com/sainikartavya76-gif/aidconnect-now/pkg/geo"
)

// Urgency classifies how quickly an emergency needs a responder.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// EmergencyStatus tracks a request through its forward-only lifecycle.
type EmergencyStatus string

const (
	EmergencyPending  EmergencyStatus = "pending"
	EmergencyAssigned EmergencyStatus = "assigned"
	EmergencyResolved EmergencyStatus = "resolved"
)

// CanTransitionTo reports whether the status may move to next.
// The lifecycle is strictly pending -> assigned -> resolved.
func (s EmergencyStatus) CanTransitionTo(next EmergencyStatus) bool {
	switch s {
	case EmergencyPending:
		return next == EmergencyAssigned
	case EmergencyAssigned:
		return next == EmergencyResolved
	}
	return false
}

// EmergencyRequest is a logged need for one skill at one place.
type EmergencyRequest struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	TypeLabel   string           `json:"type_label"`
	Location    string           `json:"location"`
	Coordinates *geo.Coordinates `json:"coordinates,omitempty"`
	Skill       string           `json:"skill"`
	Urgency     Urgency          `json:"urgency"`
	Description string           `json:"description,omitempty"`
	Status      EmergencyStatus  `json:"status"`
	Version     int              `json:"version"`
	ReportedBy  string           `json:"reported_by,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

func (e *EmergencyRequest) IsPending() bool {
	return e != nil && e.Status == EmergencyPending
}
