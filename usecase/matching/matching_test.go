package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sainikartavya76-gif/aidconnect-now/domain"
	"github.com/sainikartavya76-gif/aidconnect-now/pkg/geo"
)

func medicalEmergency() *domain.EmergencyRequest {
	return &domain.EmergencyRequest{
		ID:          "e-test",
		Type:        "medical",
		TypeLabel:   "Medical Emergency",
		Location:    "Sector 62, Noida",
		Coordinates: &geo.Coordinates{Lat: 28.585, Lng: 77.315},
		Skill:       "first-aid",
		Urgency:     domain.UrgencyHigh,
		Status:      domain.EmergencyPending,
	}
}

func TestScoreFullMatch(t *testing.T) {
	emergency := medicalEmergency()
	volunteer := &domain.Volunteer{
		ID:          "v-full",
		Name:        "Asha",
		City:        "Noida",
		Skills:      []string{"first-aid"},
		Available:   true,
		Verified:    true,
		Coordinates: &geo.Coordinates{Lat: 28.570, Lng: 77.321}, // ~1.8 km away
	}
	assert.Equal(t, 100, Score(volunteer, emergency))
}

func TestScoreUnavailableVolunteer(t *testing.T) {
	emergency := medicalEmergency()
	volunteer := &domain.Volunteer{
		ID:          "v-busy",
		City:        "Noida",
		Skills:      []string{"first-aid"},
		Available:   false,
		Verified:    true,
		Coordinates: &geo.Coordinates{Lat: 28.570, Lng: 77.321},
	}
	// 40 skill + 0 availability + 15 verified + 20 proximity
	assert.Equal(t, 75, Score(volunteer, emergency))
}

func TestScoreNeverExceedsHundred(t *testing.T) {
	emergency := medicalEmergency()
	volunteer := &domain.Volunteer{
		City:        "Noida",
		Skills:      []string{"first-aid"},
		Available:   true,
		Verified:    true,
		Coordinates: emergency.Coordinates,
	}
	assert.LessOrEqual(t, Score(volunteer, emergency), 100)
	assert.GreaterOrEqual(t, Score(&domain.Volunteer{}, emergency), 0)
}

func TestScoreProximityBands(t *testing.T) {
	emergency := medicalEmergency()
	base := domain.Volunteer{
		City:      "Gurgaon",
		Skills:    []string{"first-aid"},
		Available: true,
	}

	tests := []struct {
		name   string
		coords geo.Coordinates
		want   int
	}{
		{"under 3 km", geo.Coordinates{Lat: 28.570, Lng: 77.321}, 40 + 25 + 20},
		{"under 10 km", geo.Coordinates{Lat: 28.535, Lng: 77.391}, 40 + 25 + 10},
		{"under 20 km", geo.Coordinates{Lat: 28.6315, Lng: 77.2167}, 40 + 25 + 5},
		{"beyond region", geo.Coordinates{Lat: 28.4595, Lng: 77.0266}, 40 + 25 + 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			volunteer := base
			coords := tc.coords
			volunteer.Coordinates = &coords
			assert.Equal(t, tc.want, Score(&volunteer, emergency))
		})
	}
}

func TestScoreTextFallback(t *testing.T) {
	emergency := medicalEmergency()
	emergency.Coordinates = nil

	metro := &domain.Volunteer{
		City:      "Noida",
		Skills:    []string{"first-aid"},
		Available: true,
	}
	// 40 skill + 25 availability + 15 metro-area fallback
	assert.Equal(t, 80, Score(metro, emergency))

	outside := &domain.Volunteer{
		City:      "Jaipur",
		Skills:    []string{"first-aid"},
		Available: true,
	}
	// 40 skill + 25 availability + 8 baseline fallback
	assert.Equal(t, 73, Score(outside, emergency))
}

func TestScoreMonotonicInVerification(t *testing.T) {
	emergency := medicalEmergency()
	unverified := &domain.Volunteer{City: "Noida", Skills: []string{"first-aid"}, Available: true}
	verified := &domain.Volunteer{City: "Noida", Skills: []string{"first-aid"}, Available: true, Verified: true}
	assert.Greater(t, Score(verified, emergency), Score(unverified, emergency))
}

func TestDistanceLabel(t *testing.T) {
	emergency := medicalEmergency()

	withCoords := &domain.Volunteer{
		City:        "Noida",
		Coordinates: &geo.Coordinates{Lat: 28.570, Lng: 77.321},
	}
	assert.Equal(t, "1.8 km", DistanceLabel(withCoords, emergency))

	sameArea := &domain.Volunteer{City: "Noida"}
	assert.Equal(t, "same area", DistanceLabel(sameArea, emergency))

	unknown := &domain.Volunteer{City: "Jaipur"}
	assert.Equal(t, "unknown distance", DistanceLabel(unknown, emergency))
}

func TestRankFiltersAndOrders(t *testing.T) {
	emergency := medicalEmergency()
	volunteers := []domain.Volunteer{
		{ID: "v-no-skill", City: "Noida", Skills: []string{"rescue"}, Available: true, Verified: true},
		{ID: "v-busy", City: "Noida", Skills: []string{"first-aid"}, Available: false, Verified: true},
		{ID: "v-far", City: "Jaipur", Skills: []string{"first-aid"}, Available: true},
		{
			ID: "v-best", City: "Noida", Skills: []string{"first-aid"},
			Available: true, Verified: true,
			Coordinates: &geo.Coordinates{Lat: 28.570, Lng: 77.321},
		},
	}

	candidates := Rank(emergency, volunteers)

	assert.Len(t, candidates, 2)
	assert.Equal(t, "v-best", candidates[0].Volunteer.ID)
	assert.Equal(t, 100, candidates[0].Score)
	assert.Equal(t, "v-far", candidates[1].Volunteer.ID)

	for _, c := range candidates {
		assert.NotEqual(t, "v-no-skill", c.Volunteer.ID)
		assert.NotEqual(t, "v-busy", c.Volunteer.ID)
	}
}

func TestRankStableOnTies(t *testing.T) {
	emergency := medicalEmergency()
	emergency.Coordinates = nil

	// identical scoring inputs, so ordering must follow input order
	volunteers := []domain.Volunteer{
		{ID: "v-a", City: "Noida", Skills: []string{"first-aid"}, Available: true},
		{ID: "v-b", City: "Noida", Skills: []string{"first-aid"}, Available: true},
		{ID: "v-c", City: "Noida", Skills: []string{"first-aid"}, Available: true},
	}

	candidates := Rank(emergency, volunteers)
	assert.Len(t, candidates, 3)
	assert.Equal(t, "v-a", candidates[0].Volunteer.ID)
	assert.Equal(t, "v-b", candidates[1].Volunteer.ID)
	assert.Equal(t, "v-c", candidates[2].Volunteer.ID)
}

func TestRankEmptyPool(t *testing.T) {
	candidates := Rank(medicalEmergency(), nil)
	assert.Empty(t, candidates)
}
