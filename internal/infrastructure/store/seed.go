package store

import (
	"time"

	"github.com/sainikartavya76-gif/aidconnect-now/domain"
	"github.com/sainikartavya76-gif/aidconnect-now/pkg/geo"
)

// Fixture is the demo catalog written on first run so the matching engine is
// demonstrable without manual data entry.
type Fixture struct {
	Volunteers  []domain.Volunteer
	Emergencies []domain.EmergencyRequest
	Tasks       []domain.Task
}

func coords(lat, lng float64) *geo.Coordinates {
	return &geo.Coordinates{Lat: lat, Lng: lng}
}

// DefaultFixture returns the fixed Delhi NCR catalog. The records themselves
// are identical across runs; only the timestamps are offset from now.
func DefaultFixture(now time.Time) Fixture {
	day := 24 * time.Hour

	return Fixture{
		Volunteers: []domain.Volunteer{
			{
				ID: "v1", Name: "Dr. Rahul Sharma", City: "Noida",
				Skills:    []string{"First Aid", "Medical Help"},
				Available: true, Verified: true, TasksCompleted: 12,
				Phone: "+91 98765 43210", Coordinates: coords(28.5850, 77.3150),
				CreatedAt: now.Add(-30 * day),
			},
			{
				ID: "v2", Name: "Priya Singh", City: "New Delhi",
				Skills:    []string{"First Aid", "Driving"},
				Available: true, Verified: true, TasksCompleted: 8,
				Phone: "+91 98765 43211", Coordinates: coords(28.6315, 77.2167),
				CreatedAt: now.Add(-25 * day),
			},
			{
				ID: "v3", Name: "Amit Kumar (NDRF)", City: "Noida",
				Skills:    []string{"Rescue Operations", "Logistics"},
				Available: true, Verified: true, TasksCompleted: 15,
				Phone: "+91 98765 43212", Coordinates: coords(28.5700, 77.3210),
				CreatedAt: now.Add(-20 * day),
			},
			{
				ID: "v4", Name: "Dr. Sneha Gupta", City: "Gurugram",
				Skills:    []string{"Medical Help", "Communication Support"},
				Available: true, Verified: true, TasksCompleted: 6,
				Phone: "+91 98765 43213", Coordinates: coords(28.4949, 77.0887),
				CreatedAt: now.Add(-18 * day),
			},
			{
				ID: "v5", Name: "Vikram Patel (Fire Dept.)", City: "New Delhi",
				Skills:    []string{"Rescue Operations", "First Aid", "Driving"},
				Available: true, Verified: true, TasksCompleted: 22,
				Phone: "+91 98765 43214", Coordinates: coords(28.5650, 77.2430),
				CreatedAt: now.Add(-15 * day),
			},
			{
				ID: "v6", Name: "Anjali Reddy", City: "Noida",
				Skills:    []string{"Electrical/Technical Support", "Communication Support"},
				Available: false, Verified: true, TasksCompleted: 9,
				Phone: "+91 98765 43215", Coordinates: coords(28.6270, 77.3650),
				CreatedAt: now.Add(-12 * day),
			},
			{
				ID: "v7", Name: "Rohit Verma", City: "Faridabad",
				Skills:    []string{"Logistics", "Driving"},
				Available: true, Verified: true, TasksCompleted: 5,
				Phone: "+91 98765 43216", Coordinates: coords(28.3910, 77.3100),
				CreatedAt: now.Add(-10 * day),
			},
			{
				ID: "v8", Name: "Dr. Kavita Joshi", City: "New Delhi",
				Skills:    []string{"Medical Help", "First Aid"},
				Available: true, Verified: true, TasksCompleted: 11,
				Phone: "+91 98765 43217", Coordinates: coords(28.5245, 77.2066),
				CreatedAt: now.Add(-8 * day),
			},
			{
				ID: "v9", Name: "Suresh Nair (Electrician)", City: "Ghaziabad",
				Skills:    []string{"Rescue Operations", "Electrical/Technical Support"},
				Available: true, Verified: false, TasksCompleted: 3,
				Phone: "+91 98765 43218", Coordinates: coords(28.6410, 77.3580),
				CreatedAt: now.Add(-5 * day),
			},
			{
				ID: "v10", Name: "Meera Krishnan", City: "Noida",
				Skills:    []string{"Communication Support", "Logistics"},
				Available: true, Verified: true, TasksCompleted: 7,
				Phone: "+91 98765 43219", Coordinates: coords(28.5930, 77.4280),
				CreatedAt: now.Add(-3 * day),
			},
			{
				ID: "v11", Name: "Arjun Mehta (Ambulance)", City: "New Delhi",
				Skills:    []string{"Driving", "Logistics", "First Aid"},
				Available: true, Verified: true, TasksCompleted: 18,
				Phone: "+91 98765 43220", Coordinates: coords(28.6520, 77.1900),
				CreatedAt: now.Add(-2 * day),
			},
			{
				ID: "v12", Name: "Pooja Sharma (Nurse)", City: "Gurugram",
				Skills:    []string{"Medical Help", "Communication Support"},
				Available: false, Verified: true, TasksCompleted: 4,
				Phone: "+91 98765 43221", Coordinates: coords(28.4590, 77.0266),
				CreatedAt: now.Add(-1 * day),
			},
			{
				ID: "v13", Name: "Rajesh Tiwari (Police)", City: "New Delhi",
				Skills:    []string{"Rescue Operations", "Communication Support", "Driving"},
				Available: true, Verified: true, TasksCompleted: 25,
				Phone: "+91 98765 43222", Coordinates: coords(28.7150, 77.1140),
				CreatedAt: now.Add(-7 * day),
			},
			{
				ID: "v14", Name: "Sunita Devi", City: "Ghaziabad",
				Skills:    []string{"First Aid", "Logistics"},
				Available: true, Verified: true, TasksCompleted: 6,
				Phone: "+91 98765 43223", Coordinates: coords(28.6450, 77.3420),
				CreatedAt: now.Add(-4 * day),
			},
			{
				ID: "v15", Name: "Deepak Singh (PWD)", City: "New Delhi",
				Skills:    []string{"Electrical/Technical Support", "Logistics"},
				Available: true, Verified: true, TasksCompleted: 14,
				Phone: "+91 98765 43224", Coordinates: coords(28.6280, 77.0890),
				CreatedAt: now.Add(-6 * day),
			},
		},
		Emergencies: []domain.EmergencyRequest{
			{
				ID: "e1", Type: "medical", TypeLabel: "Medical Emergency",
				Location: "Sector 18 Metro Station, Noida",
				Skill:    "First Aid", Urgency: domain.UrgencyHigh,
				Description: "Senior citizen collapsed near metro gate. Conscious but needs immediate medical assistance. Family has been notified.",
				Status:      domain.EmergencyPending, Version: 1,
				Coordinates: coords(28.5700, 77.3210), ReportedBy: "Metro Security",
				CreatedAt: now.Add(-5 * time.Minute),
			},
			{
				ID: "e2", Type: "fire", TypeLabel: "Fire Emergency",
				Location: "Connaught Place Block A, New Delhi",
				Skill:    "Rescue Operations", Urgency: domain.UrgencyHigh,
				Description: "Fire reported in 3rd floor office. Fire brigade en route. Need volunteers for crowd control and evacuation support.",
				Status:      domain.EmergencyPending, Version: 1,
				Coordinates: coords(28.6315, 77.2167), ReportedBy: "Building Security",
				CreatedAt: now.Add(-10 * time.Minute),
			},
			{
				ID: "e3", Type: "flood", TypeLabel: "Waterlogging",
				Location: "Sector 62 Industrial Area, Noida",
				Skill:    "Logistics", Urgency: domain.UrgencyMedium,
				Description: "Heavy waterlogging after monsoon rain. Several vehicles stuck. Need help with traffic management and supply distribution to affected workers.",
				Status:      domain.EmergencyPending, Version: 1,
				Coordinates: coords(28.6270, 77.3650), ReportedBy: "Traffic Police",
				CreatedAt: now.Add(-30 * time.Minute),
			},
			{
				ID: "e4", Type: "infrastructure", TypeLabel: "Power Outage",
				Location: "Fortis Hospital, Dwarka",
				Skill:    "Electrical/Technical Support", Urgency: domain.UrgencyHigh,
				Description: "Main power grid failure. Backup generators running but need electrical support for critical equipment. Hospital has 50+ patients in ICU.",
				Status:      domain.EmergencyPending, Version: 1,
				Coordinates: coords(28.5520, 77.0580), ReportedBy: "Hospital Admin",
				CreatedAt: now.Add(-15 * time.Minute),
			},
			{
				ID: "e5", Type: "accident", TypeLabel: "Road Accident",
				Location: "NH-24 Near Akshardham, New Delhi",
				Skill:    "Medical Help", Urgency: domain.UrgencyHigh,
				Description: "Multi-vehicle pile-up on highway. 3 injured, ambulances dispatched. Need medical volunteers for first response until ambulances arrive.",
				Status:      domain.EmergencyPending, Version: 1,
				Coordinates: coords(28.6127, 77.2773), ReportedBy: "Highway Patrol",
				CreatedAt: now.Add(-450 * time.Second),
			},
			{
				ID: "e6", Type: "medical", TypeLabel: "Medical Camp Support",
				Location: "Gurugram Cyber City",
				Skill:    "Medical Help", Urgency: domain.UrgencyLow,
				Description: "Health camp organized by corporate. Need certified medical volunteers to assist with basic health checkups for 200+ employees.",
				Status:      domain.EmergencyPending, Version: 1,
				Coordinates: coords(28.4949, 77.0887), ReportedBy: "HR Department",
				CreatedAt: now.Add(-2 * time.Hour),
			},
		},
		Tasks: []domain.Task{
			{
				ID: "t1", EmergencyID: "demo1", EmergencyType: "Medical Emergency",
				Location:    "Saket District Centre, New Delhi",
				VolunteerID: "v1", VolunteerName: "Dr. Rahul Sharma",
				Status:     domain.TaskInProgress,
				AssignedAt: now.Add(-45 * time.Minute), UpdatedAt: now.Add(-30 * time.Minute),
			},
			{
				ID: "t2", EmergencyID: "demo2", EmergencyType: "Rescue Operation",
				Location:    "Lajpat Nagar Market, New Delhi",
				VolunteerID: "v5", VolunteerName: "Vikram Patel",
				Status:     domain.TaskCompleted,
				AssignedAt: now.Add(-4 * time.Hour), UpdatedAt: now.Add(-90 * time.Minute),
			},
			{
				ID: "t3", EmergencyID: "demo3", EmergencyType: "Logistics Support",
				Location:    "Indirapuram, Ghaziabad",
				VolunteerID: "v3", VolunteerName: "Amit Kumar",
				Status:     domain.TaskAssigned,
				AssignedAt: now.Add(-10 * time.Minute), UpdatedAt: now.Add(-10 * time.Minute),
			},
		},
	}
}
