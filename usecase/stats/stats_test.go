package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sainikartavya76-gif/aidconnect-now/domain"
	"github.com/sainikartavya76-gif/aidconnect-now/internal/infrastructure/store"
	boltRepo "github.com/sainikartavya76-gif/aidconnect-now/repository/bolt"
)

func newTestUseCase(t *testing.T) (*UseCase, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "stats.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	uc := New(
		boltRepo.NewVolunteerRepository(st),
		boltRepo.NewEmergencyRepository(st),
		boltRepo.NewTaskRepository(st),
	)
	return uc, st
}

func TestSummaryOnEmptyStore(t *testing.T) {
	uc, _ := newTestUseCase(t)

	summary, err := uc.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, summary.TotalVolunteers)
	require.Equal(t, 0, summary.TotalTasks)
	require.Empty(t, summary.CompletionsByVolunteer)
}

func TestSummaryCountsSeededCatalog(t *testing.T) {
	uc, st := newTestUseCase(t)

	fix := store.DefaultFixture(time.Now())
	require.NoError(t, st.Seed(fix))

	summary, err := uc.Summary(context.Background())
	require.NoError(t, err)

	require.Equal(t, len(fix.Volunteers), summary.TotalVolunteers)
	require.Equal(t, len(fix.Emergencies), summary.TotalEmergencies)
	require.Equal(t, len(fix.Tasks), summary.TotalTasks)
	require.Equal(t, len(fix.Emergencies), summary.PendingEmergencies, "catalog emergencies start pending")
	require.Equal(t, summary.TotalTasks, summary.ActiveTasks+summary.CompletedTasks)
}

func TestSummaryDerivesCompletionsFromTasks(t *testing.T) {
	uc, st := newTestUseCase(t)
	ctx := context.Background()

	volunteers := boltRepo.NewVolunteerRepository(st)
	emergencies := boltRepo.NewEmergencyRepository(st)
	tasks := boltRepo.NewTaskRepository(st)

	v, err := volunteers.Create(ctx, &domain.Volunteer{
		Name: "Asha Verma", City: "Noida", Skills: []string{"First Aid"},
		Available: true, TasksCompleted: 99, // stale historical counter
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		e, err := emergencies.Create(ctx, &domain.EmergencyRequest{
			Type: "medical", Location: "Noida", Skill: "First Aid", Urgency: domain.UrgencyHigh,
		})
		require.NoError(t, err)

		task, err := emergencies.Assign(ctx, e.ID, &domain.Task{
			VolunteerID: v.ID, VolunteerName: v.Name,
		})
		require.NoError(t, err)

		// assigned -> in-progress -> completed
		_, err = tasks.Advance(ctx, task.ID, time.Now())
		require.NoError(t, err)
		_, err = tasks.Advance(ctx, task.ID, time.Now())
		require.NoError(t, err)
	}

	summary, err := uc.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, summary.CompletedTasks)
	require.Equal(t, 2, summary.CompletionsByVolunteer[v.ID], "derived from task records, not the stored counter")
	require.Equal(t, 2, summary.AssignedEmergencies)
	require.Equal(t, 0, summary.ActiveTasks)
}
