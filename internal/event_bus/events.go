package event_bus

import "time"

const (
	EventCreatedType       EventType = "event.created"
	EventUpdatedType       EventType = "event.updated"
	EventBudgetUpdatedType EventType = "event.budget_updated"
	UserLoggedInType       EventType = "user.logged_in"
)

// EventCreated is published after a new event has been stored.
type EventCreated struct {
	EventID   int
	Name      string
	StartTime time.Time
}

// EventUpdated is published after a full event update has been stored.
type EventUpdated struct {
	EventID   int
	Name      string
	StartTime time.Time
}

// EventBudgetUpdated is published after a budget-only update has been stored.
type EventBudgetUpdated struct {
	EventID      int
	ActualBudget float64
}

// UserLoggedIn is published after a successful login.
type UserLoggedIn struct {
	UserID      int
	DisplayName string
}
