package location

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sainikartavya76-gif/aidconnect-now/pkg/geo"
)

func TestCurrentReturnsSourcePosition(t *testing.T) {
	want := geo.Coordinates{Lat: 28.570, Lng: 77.321}
	r := NewResolver(func(ctx context.Context) (geo.Coordinates, error) {
		return want, nil
	}, time.Second, nil)

	got, err := r.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCurrentFallsBackWithoutSource(t *testing.T) {
	r := NewResolver(nil, time.Second, nil)

	got, err := r.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, DefaultFallback, got)
}

func TestCurrentFallsBackOnSourceError(t *testing.T) {
	r := NewResolver(func(ctx context.Context) (geo.Coordinates, error) {
		return geo.Coordinates{}, errors.New("gps unavailable")
	}, time.Second, nil)

	got, err := r.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, DefaultFallback, got)
}

func TestCurrentFallsBackOnTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	r := NewResolver(func(ctx context.Context) (geo.Coordinates, error) {
		<-release
		return geo.Coordinates{Lat: 1, Lng: 1}, nil
	}, 20*time.Millisecond, nil)

	start := time.Now()
	got, err := r.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, DefaultFallback, got)
	require.Less(t, time.Since(start), time.Second, "wait must be bounded")
}
