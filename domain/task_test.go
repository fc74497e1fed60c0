package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatusNext(t *testing.T) {
	next, ok := TaskAssigned.Next()
	assert.True(t, ok)
	assert.Equal(t, TaskInProgress, next)

	next, ok = TaskInProgress.Next()
	assert.True(t, ok)
	assert.Equal(t, TaskCompleted, next)

	next, ok = TaskCompleted.Next()
	assert.False(t, ok)
	assert.Equal(t, TaskCompleted, next)
}

func TestEmergencyStatusTransitions(t *testing.T) {
	assert.True(t, EmergencyPending.CanTransitionTo(EmergencyAssigned))
	assert.True(t, EmergencyAssigned.CanTransitionTo(EmergencyResolved))

	// no skipping, no going back
	assert.False(t, EmergencyPending.CanTransitionTo(EmergencyResolved))
	assert.False(t, EmergencyAssigned.CanTransitionTo(EmergencyPending))
	assert.False(t, EmergencyResolved.CanTransitionTo(EmergencyAssigned))
	assert.False(t, EmergencyResolved.CanTransitionTo(EmergencyPending))
}

func TestUrgencyValid(t *testing.T) {
	assert.True(t, UrgencyLow.Valid())
	assert.True(t, UrgencyMedium.Valid())
	assert.True(t, UrgencyHigh.Valid())
	assert.False(t, Urgency("critical").Valid())
	assert.False(t, Urgency("").Valid())
}

func TestVolunteerHasSkill(t *testing.T) {
	v := &Volunteer{Skills: []string{"First Aid", "Driving"}}
	assert.True(t, v.HasSkill("First Aid"))
	assert.False(t, v.HasSkill("first aid"), "labels come from a fixed catalog, comparison is exact")
	assert.False(t, (*Volunteer)(nil).HasSkill("First Aid"))
}

func TestVolunteerInMetroArea(t *testing.T) {
	tokens := []string{"noida", "delhi"}
	assert.True(t, (&Volunteer{City: "Greater Noida"}).InMetroArea(tokens))
	assert.True(t, (&Volunteer{City: "New Delhi"}).InMetroArea(tokens))
	assert.False(t, (&Volunteer{City: "Jaipur"}).InMetroArea(tokens))
}
