package event

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidEvent = errors.New("invalid event")

type Status string

const (
	StatusPendingApproval Status = "PendingApproval"
	StatusUnderReview     Status = "UnderReview"
	StatusApproved        Status = "Approved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPendingApproval, StatusUnderReview, StatusApproved:
		return true
	}
	return false
}

type Event struct {
	ID          int
	Name        string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Status      Status
	// EstimatedBudget is the planned spend; ActualBudget tracks what has
	// actually been committed and may be updated independently of status.
	EstimatedBudget float64
	ActualBudget    float64
	MaxGuests       int
	CategoryID      int
	VenueID         int
	ManagerID       int
}

func (e Event) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: event name must not be empty", ErrInvalidEvent)
	}
	if e.StartTime.IsZero() || e.EndTime.IsZero() {
		return fmt.Errorf("%w: event start and end times are required", ErrInvalidEvent)
	}
	if !e.StartTime.Before(e.EndTime) {
		return fmt.Errorf("%w: event end time must be after start time", ErrInvalidEvent)
	}
	if e.EstimatedBudget < 0 {
		return fmt.Errorf("%w: estimated budget must not be negative", ErrInvalidEvent)
	}
	if e.ActualBudget < 0 {
		return fmt.Errorf("%w: actual budget must not be negative", ErrInvalidEvent)
	}
	if e.MaxGuests < 1 {
		return fmt.Errorf("%w: max guest count must be at least 1", ErrInvalidEvent)
	}
	if !e.Status.Valid() {
		return fmt.Errorf("%w: unknown event status: %q", ErrInvalidEvent, e.Status)
	}
	return nil
}
