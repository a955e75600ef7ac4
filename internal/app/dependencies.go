package app

import (
	"database/sql"
	"time"

	"github.com/eventra/eventra/internal/config"
	"github.com/eventra/eventra/internal/event_bus"
	"github.com/eventra/eventra/pkg/category"
	"github.com/eventra/eventra/pkg/event"
	"github.com/eventra/eventra/pkg/realtime"
	"github.com/eventra/eventra/pkg/reminder"
	"github.com/eventra/eventra/pkg/status"
	"github.com/eventra/eventra/pkg/user"
	"github.com/eventra/eventra/pkg/venue"
)

// StorageMode records which EventStore backend the process is running on.
type StorageMode string

const (
	StorageModePostgres StorageMode = "postgres"
	StorageModeMemory   StorageMode = "memory"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.EventBus
	Hub *realtime.Hub

	EventRepo    event.EventRepository
	EventService event.EventService
	EventHandler *event.EventHandler

	ReminderScheduler *reminder.Scheduler
	ChangeNotifier    *realtime.ChangeNotifier

	CategoryRepo    category.CategoryRepo
	CategoryHandler *category.CategoryHandler

	VenueRepo    venue.VenueRepo
	VenueHandler *venue.VenueHandler

	UserRepo    user.UserRepo
	UserService user.Service
	UserHandler *user.Handler

	StatusHandler *status.Handler
}

// BuildDependencies initializes and wires all application services and
// handlers. A nil db selects the in-memory demo-mode repositories.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Hub = realtime.NewHub()

	mode := StorageModePostgres
	if db != nil {
		deps.EventRepo = event.NewEventRepo(db)
		deps.CategoryRepo = category.NewCategoryRepo(db)
		deps.VenueRepo = venue.NewVenueRepo(db)
		deps.UserRepo = user.NewUserRepo(db)
	} else {
		mode = StorageModeMemory
		deps.EventRepo = event.NewMemoryEventRepository(event.DemoEvents(time.Now()))
		deps.CategoryRepo = category.NewMemoryCategoryRepo()
		deps.VenueRepo = venue.NewMemoryVenueRepo()
		deps.UserRepo = user.NewMemoryUserRepo()
	}

	deps.EventService = event.NewEventService(deps.EventRepo, deps.Bus)
	deps.EventHandler = event.NewEventHandler(deps.EventService)

	tickInterval := time.Duration(cfg.Realtime.TickIntervalSeconds) * time.Second
	deps.ReminderScheduler = reminder.NewScheduler(deps.EventRepo, deps.Hub, tickInterval)
	deps.ChangeNotifier = realtime.NewChangeNotifier(deps.Bus, deps.Hub)

	deps.CategoryHandler = category.NewCategoryHandler(deps.CategoryRepo)
	deps.VenueHandler = venue.NewVenueHandler(deps.VenueRepo)

	deps.UserService = user.NewService(deps.UserRepo, deps.Bus)
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.StatusHandler = status.NewHandler(deps.Hub, string(mode))

	return deps
}
