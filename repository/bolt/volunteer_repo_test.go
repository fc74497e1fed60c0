package bolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	bbolt "go.etcd.io/bbolt"

	"github.com/sainikartavya76-gif/aidconnect-now/domain"
	"github.com/sainikartavya76-gif/aidconnect-now/internal/infrastructure/store"
	"github.com/sainikartavya76-gif/aidconnect-now/repository"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "repo.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestVolunteerCreateAssignsDefaults(t *testing.T) {
	repo := NewVolunteerRepository(newTestStore(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Volunteer{
		Name:   "Asha Verma",
		City:   "Noida",
		Skills: []string{"First Aid"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Asha Verma", got.Name)
}

func TestVolunteerGetByIDNotFound(t *testing.T) {
	repo := NewVolunteerRepository(newTestStore(t))
	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrVolunteerNotFound)
}

func TestVolunteerUpdateMissingRecord(t *testing.T) {
	repo := NewVolunteerRepository(newTestStore(t))
	err := repo.Update(context.Background(), &domain.Volunteer{ID: "missing", Name: "x"})
	require.ErrorIs(t, err, domain.ErrVolunteerNotFound)
}

func TestVolunteerListFiltersAndOrder(t *testing.T) {
	st := newTestStore(t)
	repo := NewVolunteerRepository(st)
	ctx := context.Background()
	now := time.Now()

	fixtures := []domain.Volunteer{
		{ID: "v-old", Name: "First", City: "Noida", Skills: []string{"First Aid"}, Available: true, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "v-mid", Name: "Second", City: "Delhi", Skills: []string{"Logistics"}, Available: false, Verified: true, CreatedAt: now.Add(-time.Hour)},
		{ID: "v-new", Name: "Third", City: "Noida", Skills: []string{"First Aid", "Driving"}, Available: true, Verified: true, CreatedAt: now},
	}
	for i := range fixtures {
		_, err := repo.Create(ctx, &fixtures[i])
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, repository.VolunteerFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// registration order
	require.Equal(t, "v-old", all[0].ID)
	require.Equal(t, "v-new", all[2].ID)

	skilled, err := repo.List(ctx, repository.VolunteerFilter{Skill: "First Aid"})
	require.NoError(t, err)
	require.Len(t, skilled, 2)

	available := true
	verified := true
	both, err := repo.List(ctx, repository.VolunteerFilter{Available: &available, Verified: &verified})
	require.NoError(t, err)
	require.Len(t, both, 1)
	require.Equal(t, "v-new", both[0].ID)

	city, err := repo.List(ctx, repository.VolunteerFilter{City: "Delhi"})
	require.NoError(t, err)
	require.Len(t, city, 1)
}

func TestVolunteerListSkipsCorruptRecords(t *testing.T) {
	st := newTestStore(t)
	repo := NewVolunteerRepository(st)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Volunteer{ID: "v-good", Name: "Good", City: "Noida", Skills: []string{"First Aid"}})
	require.NoError(t, err)

	err = st.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(store.BucketVolunteers)).Put([]byte("v-bad"), []byte("{not json"))
	})
	require.NoError(t, err)

	all, err := repo.List(ctx, repository.VolunteerFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "v-good", all[0].ID)

	// a corrupt record reads as absent
	_, err = repo.GetByID(ctx, "v-bad")
	require.ErrorIs(t, err, domain.ErrVolunteerNotFound)
}

func TestEmergencyCreateDefaults(t *testing.T) {
	repo := NewEmergencyRepository(newTestStore(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.EmergencyRequest{
		Type:     "medical",
		Location: "Sector 18, Noida",
		Skill:    "First Aid",
		Urgency:  domain.UrgencyHigh,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, domain.EmergencyPending, created.Status)
	require.Equal(t, 1, created.Version)
}

func TestEmergencyListNewestFirst(t *testing.T) {
	repo := NewEmergencyRepository(newTestStore(t))
	ctx := context.Background()
	now := time.Now()

	for _, e := range []domain.EmergencyRequest{
		{ID: "e-old", Type: "fire", Location: "CP", Skill: "Rescue Operations", Urgency: domain.UrgencyHigh, CreatedAt: now.Add(-time.Hour)},
		{ID: "e-new", Type: "medical", Location: "Noida", Skill: "First Aid", Urgency: domain.UrgencyMedium, CreatedAt: now},
	} {
		rec := e
		_, err := repo.Create(ctx, &rec)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, repository.EmergencyFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "e-new", all[0].ID)

	fires, err := repo.List(ctx, repository.EmergencyFilter{Type: "fire"})
	require.NoError(t, err)
	require.Len(t, fires, 1)
	require.Equal(t, "e-old", fires[0].ID)
}
