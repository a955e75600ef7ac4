package event

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/eventra/eventra/internal/event_bus"
	"github.com/stretchr/testify/assert"
)

type failingEventRepo struct {
	MemoryEventRepository
}

func (r *failingEventRepo) Create(ctx context.Context, event Event) (Event, error) {
	return Event{}, fmt.Errorf("storage unavailable")
}

func (r *failingEventRepo) Update(ctx context.Context, event Event) (Event, error) {
	return Event{}, fmt.Errorf("storage unavailable")
}

func (r *failingEventRepo) UpdateBudget(ctx context.Context, id int, amount float64) (Event, error) {
	return Event{}, fmt.Errorf("storage unavailable")
}

type busRecorder struct {
	published []event_bus.Event
}

func recordBus(bus *event_bus.EventBus, types ...event_bus.EventType) *busRecorder {
	recorder := &busRecorder{}
	for _, eventType := range types {
		bus.Subscribe(eventType, func(e event_bus.Event) error {
			recorder.published = append(recorder.published, e)
			return nil
		})
	}
	return recorder
}

func validEvent() Event {
	start := time.Now().Add(48 * time.Hour)
	return Event{
		Name:        "Team Workshop",
		Description: "Quarterly planning workshop",
		StartTime:   start,
		EndTime:     start.Add(4 * time.Hour),
		MaxGuests:   20,
		CategoryID:  1,
		VenueID:     1,
		ManagerID:   1,
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the event and publishes exactly one change notification", func(t *testing.T) {
		repo := NewMemoryEventRepository(nil)
		bus := event_bus.NewEventBus()
		recorder := recordBus(bus, event_bus.EventCreatedType)
		service := NewEventService(repo, bus)

		stored, err := service.Create(ctx, validEvent())

		assert.NoError(t, err)
		assert.Equal(t, 1, stored.ID)
		assert.Len(t, recorder.published, 1)
		payload := recorder.published[0].Data.(event_bus.EventCreated)
		assert.Equal(t, stored.ID, payload.EventID)
	})

	t.Run("defaults status to UnderReview", func(t *testing.T) {
		repo := NewMemoryEventRepository(nil)
		service := NewEventService(repo, event_bus.NewEventBus())

		stored, err := service.Create(ctx, validEvent())

		assert.NoError(t, err)
		assert.Equal(t, StatusUnderReview, stored.Status)
	})

	t.Run("rejects invalid events before they reach the store", func(t *testing.T) {
		repo := NewMemoryEventRepository(nil)
		bus := event_bus.NewEventBus()
		recorder := recordBus(bus, event_bus.EventCreatedType)
		service := NewEventService(repo, bus)

		invalid := validEvent()
		invalid.EndTime = invalid.StartTime.Add(-time.Hour)

		_, err := service.Create(ctx, invalid)

		assert.ErrorIs(t, err, ErrInvalidEvent)
		assert.Empty(t, recorder.published)
		events, _ := repo.GetAll(ctx)
		assert.Empty(t, events)
	})

	t.Run("store failure publishes nothing", func(t *testing.T) {
		bus := event_bus.NewEventBus()
		recorder := recordBus(bus, event_bus.EventCreatedType)
		service := NewEventService(&failingEventRepo{}, bus)

		_, err := service.Create(ctx, validEvent())

		assert.Error(t, err)
		assert.Empty(t, recorder.published)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores all fields and publishes one notification", func(t *testing.T) {
		repo := NewMemoryEventRepository(nil)
		bus := event_bus.NewEventBus()
		recorder := recordBus(bus, event_bus.EventUpdatedType)
		service := NewEventService(repo, bus)

		stored, err := service.Create(ctx, validEvent())
		assert.NoError(t, err)

		stored.Name = "Renamed Workshop"
		stored.MaxGuests = 35
		updated, err := service.Update(ctx, stored)

		assert.NoError(t, err)
		assert.Equal(t, "Renamed Workshop", updated.Name)
		assert.Len(t, recorder.published, 1)

		fetched, err := repo.GetByID(ctx, stored.ID)
		assert.NoError(t, err)
		assert.Equal(t, 35, fetched.MaxGuests)
	})

	t.Run("rejects an update that would blank the status", func(t *testing.T) {
		repo := NewMemoryEventRepository(nil)
		bus := event_bus.NewEventBus()
		recorder := recordBus(bus, event_bus.EventUpdatedType)
		service := NewEventService(repo, bus)

		stored, err := service.Create(ctx, validEvent())
		assert.NoError(t, err)

		stored.Status = ""
		_, err = service.Update(ctx, stored)

		assert.ErrorIs(t, err, ErrInvalidEvent)
		assert.Empty(t, recorder.published)

		fetched, err := repo.GetByID(ctx, stored.ID)
		assert.NoError(t, err)
		assert.Equal(t, StatusUnderReview, fetched.Status)
	})

	t.Run("unknown event surfaces not found without publishing", func(t *testing.T) {
		repo := NewMemoryEventRepository(nil)
		bus := event_bus.NewEventBus()
		recorder := recordBus(bus, event_bus.EventUpdatedType)
		service := NewEventService(repo, bus)

		missing := validEvent()
		missing.ID = 42
		missing.Status = StatusApproved
		_, err := service.Update(ctx, missing)

		assert.ErrorIs(t, err, ErrEventNotFound)
		assert.Empty(t, recorder.published)
	})
}

func TestUpdateBudget(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the budget without touching status and publishes once", func(t *testing.T) {
		repo := NewMemoryEventRepository(nil)
		bus := event_bus.NewEventBus()
		recorder := recordBus(bus, event_bus.EventBudgetUpdatedType)
		service := NewEventService(repo, bus)

		created, err := service.Create(ctx, validEvent())
		assert.NoError(t, err)

		updated, err := service.UpdateBudget(ctx, created.ID, 50000)

		assert.NoError(t, err)
		assert.Equal(t, float64(50000), updated.ActualBudget)
		assert.Equal(t, created.Status, updated.Status)
		assert.Len(t, recorder.published, 1)
		payload := recorder.published[0].Data.(event_bus.EventBudgetUpdated)
		assert.Equal(t, created.ID, payload.EventID)
		assert.Equal(t, float64(50000), payload.ActualBudget)

		events, err := service.GetAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, float64(50000), events[0].ActualBudget)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		repo := NewMemoryEventRepository(nil)
		service := NewEventService(repo, event_bus.NewEventBus())

		created, err := service.Create(ctx, validEvent())
		assert.NoError(t, err)

		_, err = service.UpdateBudget(ctx, created.ID, -1)
		assert.ErrorIs(t, err, ErrInvalidEvent)
	})

	t.Run("store failure publishes nothing", func(t *testing.T) {
		bus := event_bus.NewEventBus()
		recorder := recordBus(bus, event_bus.EventBudgetUpdatedType)
		service := NewEventService(&failingEventRepo{}, bus)

		_, err := service.UpdateBudget(ctx, 1, 100)

		assert.Error(t, err)
		assert.Empty(t, recorder.published)
	})
}

func TestListByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEventRepository(nil)
	service := NewEventService(repo, event_bus.NewEventBus())

	approved := validEvent()
	approved.Status = StatusApproved
	_, err := service.Create(ctx, approved)
	assert.NoError(t, err)
	_, err = service.Create(ctx, validEvent())
	assert.NoError(t, err)

	events, err := service.ListByStatus(ctx, StatusApproved)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, StatusApproved, events[0].Status)
}
