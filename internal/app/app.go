package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/eventra/eventra/internal/config"
	"github.com/eventra/eventra/internal/database"
	"github.com/eventra/eventra/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, storage, router, the realtime hub, the
// reminder scheduler, and the server lifecycle.
type Application struct {
	cfg    config.Application
	deps   *Dependencies
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full application, ready to Run(). When the
// database is unreachable the application starts in demo mode on in-memory
// storage instead of failing.
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	db := openStorage(cfg)

	r := mux.NewRouter()

	// Build dependencies (services, handlers, hub, scheduler...)
	deps := BuildDependencies(db, cfg)

	// Middleware chain
	SetupMiddleware(r, deps, cfg)

	// Routes
	RegisterRoutes(r, deps, cfg)

	// Frontend
	if cfg.Frontend.Enabled {
		frontend := rest.NewFrontendHandler("frontend", "index.html")
		r.PathPrefix("/").Handler(frontend)
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         ":8181",
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, deps: deps, router: r, srv: srv}, nil
}

// openStorage connects to Postgres and applies migrations; on any failure it
// returns nil, which selects the in-memory demo-mode repositories.
func openStorage(cfg config.Application) *sql.DB {
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Warnf("Database unavailable, starting in demo mode with in-memory storage: %v", err)
		return nil
	}
	if err := database.Migrate(cfg.Database); err != nil {
		log.Warnf("Database migration failed, starting in demo mode with in-memory storage: %v", err)
		db.Close()
		return nil
	}
	return db
}

// Run starts the reminder scheduler and the HTTP server, and blocks.
func (a *Application) Run() error {
	a.deps.ReminderScheduler.Start()

	log.Infof("Starting server on %s", a.srv.Addr)
	err := a.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the scheduler, disconnects socket clients, and drains the
// HTTP server. In-flight broadcasts are allowed to complete.
func (a *Application) Shutdown(ctx context.Context) error {
	log.Info("Shutting down")
	a.deps.ReminderScheduler.Stop()
	a.deps.ChangeNotifier.Close()
	a.deps.Hub.Close()
	return a.srv.Shutdown(ctx)
}
