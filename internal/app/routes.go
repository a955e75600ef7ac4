package app

import (
	"github.com/eventra/eventra/internal/config"
	"github.com/eventra/eventra/pkg/realtime"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Events
	r.HandleFunc("/api/events", deps.EventHandler.GetEvents).Methods("GET")
	r.HandleFunc("/api/events", deps.EventHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/events/{id}", deps.EventHandler.UpdateEvent).Methods("PUT")
	r.HandleFunc("/api/events/{id}/budget", deps.EventHandler.UpdateEventBudget).Methods("PUT")

	// Lookups
	r.HandleFunc("/api/categories", deps.CategoryHandler.GetCategories).Methods("GET")
	r.HandleFunc("/api/venues", deps.VenueHandler.GetVenues).Methods("GET")
	r.HandleFunc("/api/managers", deps.UserHandler.GetManagers).Methods("GET")
	r.HandleFunc("/api/users", deps.UserHandler.GetUsers).Methods("GET")

	// Authentication
	r.HandleFunc("/api/auth/login", deps.UserHandler.Login).Methods("POST")

	// Server status
	r.HandleFunc("/api/status", deps.StatusHandler.GetStatus).Methods("GET")

	// Real-time channel
	r.HandleFunc("/ws", realtime.ServeWS(deps.Hub, deps.ReminderScheduler))
}
