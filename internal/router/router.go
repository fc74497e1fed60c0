package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/sainikartavya76-gif/aidconnect-now/api/handler"
)

type Handlers struct {
	Volunteer *apiHandler.VolunteerHandler
	Emergency *apiHandler.EmergencyHandler
	Matching  *apiHandler.MatchingHandler
	Task      *apiHandler.TaskHandler
	Stats     *apiHandler.StatsHandler
	Health    *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Volunteer routes
	r.GET("/api/v1/volunteers", handlers.Volunteer.List)
	r.POST("/api/v1/volunteers", handlers.Volunteer.Register)
	r.PATCH("/api/v1/volunteers/{id}/availability", handlers.Volunteer.SetAvailability)
	r.POST("/api/v1/volunteers/{id}/verify", handlers.Volunteer.Verify)

	// Emergency routes
	r.GET("/api/v1/emergencies", handlers.Emergency.List)
	r.POST("/api/v1/emergencies", handlers.Emergency.Submit)
	r.POST("/api/v1/emergencies/{id}/resolve", handlers.Emergency.Resolve)

	// Matching and assignment
	r.GET("/api/v1/emergencies/{id}/matches", handlers.Matching.Matches)
	r.POST("/api/v1/emergencies/{id}/assign", handlers.Matching.Assign)

	// Task lifecycle
	r.GET("/api/v1/tasks", handlers.Task.List)
	r.POST("/api/v1/tasks/{id}/advance", handlers.Task.Advance)

	r.GET("/api/v1/stats", handlers.Stats.Summary)

	return r
}
