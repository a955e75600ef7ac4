package event

import (
	"context"
	"fmt"

	"github.com/eventra/eventra/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

type EventService interface {
	GetAll(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id int) (Event, error)
	Create(ctx context.Context, event Event) (Event, error)
	Update(ctx context.Context, event Event) (Event, error)
	UpdateBudget(ctx context.Context, id int, amount float64) (Event, error)
	ListByStatus(ctx context.Context, status Status) ([]Event, error)
}

// EventServiceImpl validates mutations and publishes a change notification on
// the bus after each successful store commit. A failed commit publishes
// nothing and surfaces the error to the caller.
type EventServiceImpl struct {
	repo EventRepository
	bus  *event_bus.EventBus
}

func NewEventService(repo EventRepository, bus *event_bus.EventBus) *EventServiceImpl {
	return &EventServiceImpl{repo: repo, bus: bus}
}

func (s *EventServiceImpl) GetAll(ctx context.Context) ([]Event, error) {
	return s.repo.GetAll(ctx)
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id int) (Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventServiceImpl) Create(ctx context.Context, event Event) (Event, error) {
	if event.Status == "" {
		event.Status = StatusUnderReview
	}
	if err := event.Validate(); err != nil {
		return Event{}, err
	}

	stored, err := s.repo.Create(ctx, event)
	if err != nil {
		return Event{}, err
	}

	s.publish(ctx, event_bus.EventCreatedType, event_bus.EventCreated{
		EventID:   stored.ID,
		Name:      stored.Name,
		StartTime: stored.StartTime,
	})
	return stored, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, event Event) (Event, error) {
	if err := event.Validate(); err != nil {
		return Event{}, err
	}

	stored, err := s.repo.Update(ctx, event)
	if err != nil {
		return Event{}, err
	}

	s.publish(ctx, event_bus.EventUpdatedType, event_bus.EventUpdated{
		EventID:   stored.ID,
		Name:      stored.Name,
		StartTime: stored.StartTime,
	})
	return stored, nil
}

func (s *EventServiceImpl) UpdateBudget(ctx context.Context, id int, amount float64) (Event, error) {
	if amount < 0 {
		return Event{}, fmt.Errorf("%w: actual budget must not be negative", ErrInvalidEvent)
	}

	stored, err := s.repo.UpdateBudget(ctx, id, amount)
	if err != nil {
		return Event{}, err
	}

	s.publish(ctx, event_bus.EventBudgetUpdatedType, event_bus.EventBudgetUpdated{
		EventID:      stored.ID,
		ActualBudget: stored.ActualBudget,
	})
	return stored, nil
}

func (s *EventServiceImpl) ListByStatus(ctx context.Context, status Status) ([]Event, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *EventServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		// Notification delivery is best-effort; the mutation already committed.
		log.Errorf("failed to publish %s: %v", eventType, err)
	}
}
