package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "store.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpenCreatesBuckets(t *testing.T) {
	st := newTestStore(t)

	err := st.View(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			require.NotNil(t, tx.Bucket([]byte(name)), "bucket %s", name)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestSeedPopulatesEmptyCollections(t *testing.T) {
	st := newTestStore(t)

	fix := DefaultFixture(time.Now())
	require.NoError(t, st.Seed(fix))

	counts, err := st.Counts()
	require.NoError(t, err)
	require.Equal(t, len(fix.Volunteers), counts[BucketVolunteers])
	require.Equal(t, len(fix.Emergencies), counts[BucketEmergencies])
	require.Equal(t, len(fix.Tasks), counts[BucketTasks])
}

func TestSeedIsIdempotent(t *testing.T) {
	st := newTestStore(t)

	fix := DefaultFixture(time.Now())
	require.NoError(t, st.Seed(fix))
	require.NoError(t, st.Seed(fix))

	counts, err := st.Counts()
	require.NoError(t, err)
	require.Equal(t, len(fix.Volunteers), counts[BucketVolunteers])
}

func TestSeedSkipsNonEmptyCollection(t *testing.T) {
	st := newTestStore(t)

	// a single pre-existing record keeps the whole collection untouched
	err := st.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(BucketVolunteers)).Put([]byte("existing"), []byte(`{"id":"existing"}`))
	})
	require.NoError(t, err)

	fix := DefaultFixture(time.Now())
	require.NoError(t, st.Seed(fix))

	counts, err := st.Counts()
	require.NoError(t, err)
	require.Equal(t, 1, counts[BucketVolunteers])
	require.Equal(t, len(fix.Emergencies), counts[BucketEmergencies])
}

func TestCountsOnEmptyStore(t *testing.T) {
	st := newTestStore(t)

	counts, err := st.Counts()
	require.NoError(t, err)
	require.Equal(t, 0, counts[BucketVolunteers])
	require.Equal(t, 0, counts[BucketEmergencies])
	require.Equal(t, 0, counts[BucketTasks])
}

func TestDefaultFixtureShape(t *testing.T) {
	fix := DefaultFixture(time.Now())

	require.NotEmpty(t, fix.Volunteers)
	require.NotEmpty(t, fix.Emergencies)
	require.NotEmpty(t, fix.Tasks)

	seen := make(map[string]bool)
	for _, v := range fix.Volunteers {
		require.NotEmpty(t, v.ID)
		require.False(t, seen[v.ID], "duplicate volunteer id %s", v.ID)
		seen[v.ID] = true
		require.NotEmpty(t, v.Skills)
	}
	for _, e := range fix.Emergencies {
		require.True(t, e.IsPending())
		require.Equal(t, 1, e.Version)
		require.True(t, e.Urgency.Valid())
	}
	for _, task := range fix.Tasks {
		require.True(t, task.Status.Valid())
	}
}
