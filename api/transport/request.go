package transport

import "github.com/sainikartavya76-gif/aidconnect-now/pkg/geo"

type VolunteerRequest struct {
	Name        string           `json:"name"`
	City        string           `json:"city"`
	Skills      []string         `json:"skills"`
	Phone       string           `json:"phone"`
	Coordinates *geo.Coordinates `json:"coordinates"`
}

type AvailabilityRequest struct {
	Available bool `json:"available"`
}

type EmergencyRequest struct {
	Type        string           `json:"type"`
	TypeLabel   string           `json:"type_label"`
	Location    string           `json:"location"`
	Skill       string           `json:"skill"`
	Urgency     string           `json:"urgency"`
	Description string           `json:"description"`
	ReportedBy  string           `json:"reported_by"`
	Coordinates *geo.Coordinates `json:"coordinates"`
}

type AssignRequest struct {
	VolunteerID string `json:"volunteer_id"`
}
