package domain

import (
	"strings"
	"time"

	"github.com/sainikartavya76-gif/aidconnect-now/pkg/geo"
)

// Volunteer represents a registered citizen responder with declared skills.
type Volunteer struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	City           string           `json:"city"`
	Skills         []string         `json:"skills"`
	Available      bool             `json:"available"`
	Verified       bool             `json:"verified"`
	Phone          string           `json:"phone,omitempty"`
	Coordinates    *geo.Coordinates `json:"coordinates,omitempty"`
	TasksCompleted int              `json:"tasks_completed"`
	CreatedAt      time.Time        `json:"created_at"`
}

// HasSkill reports whether the volunteer declares the given skill.
// Comparison is exact on the label; skill labels come from a fixed catalog.
func (v *Volunteer) HasSkill(skill string) bool {
	if v == nil {
		return false
	}
	for _, s := range v.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// InMetroArea reports whether the volunteer's city carries one of the
// known metro-area tokens used by the coarse proximity fallback.
func (v *Volunteer) InMetroArea(tokens []string) bool {
	if v == nil {
		return false
	}
	city := strings.ToLower(v.City)
	for _, token := range tokens {
		if strings.Contains(city, token) {
			return true
		}
	}
	return false
}
