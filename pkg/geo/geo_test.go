package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	p := Coordinates{Lat: 28.6139, Lng: 77.2090}
	assert.InDelta(t, 0, Distance(p, p), 1e-9)
}

func TestDistanceSymmetry(t *testing.T) {
	a := Coordinates{Lat: 28.6315, Lng: 77.2167}
	b := Coordinates{Lat: 28.5700, Lng: 77.3210}
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-6)
}

func TestDistanceKnownPairs(t *testing.T) {
	tests := []struct {
		name string
		a, b Coordinates
		km   float64
	}{
		{
			name: "neighbouring sectors",
			a:    Coordinates{Lat: 28.585, Lng: 77.315},
			b:    Coordinates{Lat: 28.570, Lng: 77.321},
			km:   1.77,
		},
		{
			name: "across the city",
			a:    Coordinates{Lat: 28.6315, Lng: 77.2167},
			b:    Coordinates{Lat: 28.5700, Lng: 77.3210},
			km:   12.27,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.km, Distance(tc.a, tc.b), 0.05)
		})
	}
}

func TestDistanceIsPositive(t *testing.T) {
	a := Coordinates{Lat: -33.8688, Lng: 151.2093}
	b := Coordinates{Lat: 51.5074, Lng: -0.1278}
	assert.Greater(t, Distance(a, b), 0.0)
}
