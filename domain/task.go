package domain

import "time"

// TaskStatus tracks a task through its response lifecycle.
type TaskStatus string

const (
	TaskAssigned   TaskStatus = "assigned"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// Next returns the successor status. The machine is linear and one-way:
// assigned -> in-progress -> completed, with completed terminal.
func (s TaskStatus) Next() (TaskStatus, bool) {
	switch s {
	case TaskAssigned:
		return TaskInProgress, true
	case TaskInProgress:
		return TaskCompleted, true
	}
	return s, false
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskAssigned, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Task binds one volunteer to one emergency. Emergency and volunteer fields
// are snapshots taken at assignment time, so the task stays meaningful even
// if the source records change later.
type Task struct {
	ID            string     `json:"id"`
	EmergencyID   string     `json:"emergency_id"`
	EmergencyType string     `json:"emergency_type"`
	Location      string     `json:"location"`
	VolunteerID   string     `json:"volunteer_id"`
	VolunteerName string     `json:"volunteer_name"`
	Status        TaskStatus `json:"status"`
	AssignedAt    time.Time  `json:"assigned_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == TaskCompleted
}
