package matching

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/sainikartavya76-gif/aidconnect-now/domain"
	"github.com/sainikartavya76-gif/aidconnect-now/pkg/geo"
	"github.com/sainikartavya76-gif/aidconnect-now/repository"
)

// Scoring weights. A perfect match (skill + available + verified + under 3 km)
// lands exactly on 100.
const (
	skillPoints        = 40
	availabilityPoints = 25
	verifiedPoints     = 15
	maxScore           = 100
)

// Proximity bands for coordinate-based scoring, in kilometers.
const (
	veryCloseKm = 3
	closeKm     = 5
	nearKm      = 10
	regionKm    = 20
)

// metroTokens mark cities inside the served metro area for the text fallback.
var metroTokens = []string{"noida", "delhi"}

// Candidate is one ranked match for an emergency.
type Candidate struct {
	Volunteer domain.Volunteer `json:"volunteer"`
	Score     int              `json:"score"`
	Distance  string           `json:"distance"`
}

// Score computes the 0-100 compatibility between a volunteer and an
// emergency. Pure and deterministic; missing coordinates degrade to the
// city-text heuristic instead of failing.
func Score(volunteer *domain.Volunteer, emergency *domain.EmergencyRequest) int {
	score := 0

	if volunteer.HasSkill(emergency.Skill) {
		score += skillPoints
	}
	if volunteer.Available {
		score += availabilityPoints
	}
	if volunteer.Verified {
		score += verifiedPoints
	}
	score += proximityPoints(volunteer, emergency)

	return min(score, maxScore)
}

func proximityPoints(volunteer *domain.Volunteer, emergency *domain.EmergencyRequest) int {
	if volunteer.Coordinates != nil && emergency.Coordinates != nil {
		switch distance := geo.Distance(*volunteer.Coordinates, *emergency.Coordinates); {
		case distance < veryCloseKm:
			return 20
		case distance < closeKm:
			return 15
		case distance < nearKm:
			return 10
		case distance < regionKm:
			return 5
		default:
			return 0
		}
	}
	if cityMatches(volunteer, emergency) {
		return 15
	}
	return 8
}

func cityMatches(volunteer *domain.Volunteer, emergency *domain.EmergencyRequest) bool {
	city := strings.ToLower(volunteer.City)
	location := strings.ToLower(emergency.Location)
	return strings.Contains(location, city) || volunteer.InMetroArea(metroTokens)
}

// DistanceLabel renders a display label for the volunteer's proximity.
// Without coordinates on both sides there is no number to show, only the
// coarse text heuristic's verdict.
func DistanceLabel(volunteer *domain.Volunteer, emergency *domain.EmergencyRequest) string {
	if volunteer.Coordinates != nil && emergency.Coordinates != nil {
		return fmt.Sprintf("%.1f km", geo.Distance(*volunteer.Coordinates, *emergency.Coordinates))
	}
	if cityMatches(volunteer, emergency) {
		return "same area"
	}
	return "unknown distance"
}

// Rank filters and orders volunteers for one emergency. Only available
// volunteers holding the required skill are considered; the result is sorted
// by descending score with ties kept in input order.
func Rank(emergency *domain.EmergencyRequest, volunteers []domain.Volunteer) []Candidate {
	candidates := make([]Candidate, 0, len(volunteers))
	for _, volunteer := range volunteers {
		if !volunteer.Available || !volunteer.HasSkill(emergency.Skill) {
			continue
		}
		candidates = append(candidates, Candidate{
			Volunteer: volunteer,
			Score:     Score(&volunteer, emergency),
			Distance:  DistanceLabel(&volunteer, emergency),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

// Engine ranks the volunteer pool against stored emergencies.
type Engine struct {
	volunteers  repository.VolunteerRepository
	emergencies repository.EmergencyRepository
	logger      *zap.Logger
}

func NewEngine(volunteers repository.VolunteerRepository, emergencies repository.EmergencyRepository, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		volunteers:  volunteers,
		emergencies: emergencies,
		logger:      logger,
	}
}

// Match returns the ranked candidate list for the given emergency. An empty
// list is a valid outcome; callers decide how to present zero matches.
func (e *Engine) Match(ctx context.Context, emergencyID string) ([]Candidate, error) {
	emergency, err := e.emergencies.GetByID(ctx, emergencyID)
	if err != nil {
		return nil, err
	}
	volunteers, err := e.volunteers.List(ctx, repository.VolunteerFilter{})
	if err != nil {
		return nil, err
	}

	candidates := Rank(emergency, volunteers)
	e.logger.Debug("ranked candidates",
		zap.String("emergency_id", emergencyID),
		zap.String("skill", emergency.Skill),
		zap.Int("pool", len(volunteers)),
		zap.Int("candidates", len(candidates)),
	)
	return candidates, nil
}
