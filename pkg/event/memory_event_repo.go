package event

import (
	"context"
	"sync"
	"time"
)

// MemoryEventRepository is the in-memory fallback store used when no database
// is reachable, and the stub repository for tests. The mutex is required
// because the reminder scheduler reads concurrently with HTTP mutations.
type MemoryEventRepository struct {
	mu     sync.Mutex
	events []Event
	nextID int
}

func NewMemoryEventRepository(seed []Event) *MemoryEventRepository {
	repo := &MemoryEventRepository{nextID: 1}
	for _, e := range seed {
		e.ID = repo.nextID
		repo.nextID++
		repo.events = append(repo.events, e)
	}
	return repo
}

// DemoEvents returns the seed records served in demo mode.
func DemoEvents(now time.Time) []Event {
	return []Event{
		{
			Name:            "Tech Conference 2026",
			Description:     "Annual conference for IT specialists with talks and workshops",
			StartTime:       now.Add(72 * time.Hour),
			EndTime:         now.Add(96 * time.Hour),
			Status:          StatusApproved,
			EstimatedBudget: 150000,
			ActualBudget:    145000,
			MaxGuests:       200,
			CategoryID:      1,
			VenueID:         1,
			ManagerID:       1,
		},
		{
			Name:            "Corporate Team Training",
			Description:     "Team building and communication training for employees",
			StartTime:       now.Add(7 * 24 * time.Hour),
			EndTime:         now.Add(7*24*time.Hour + 8*time.Hour),
			Status:          StatusUnderReview,
			EstimatedBudget: 50000,
			ActualBudget:    0,
			MaxGuests:       25,
			CategoryID:      3,
			VenueID:         2,
			ManagerID:       2,
		},
		{
			Name:            "Product Launch Presentation",
			Description:     "Demonstration of the new event management platform",
			StartTime:       now.Add(24 * time.Hour),
			EndTime:         now.Add(26 * time.Hour),
			Status:          StatusApproved,
			EstimatedBudget: 0,
			ActualBudget:    0,
			MaxGuests:       50,
			CategoryID:      5,
			VenueID:         3,
			ManagerID:       1,
		},
	}
}

func (r *MemoryEventRepository) GetAll(ctx context.Context) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]Event, len(r.events))
	copy(events, r.events)
	return events, nil
}

func (r *MemoryEventRepository) GetByID(ctx context.Context, id int) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return Event{}, ErrEventNotFound
}

func (r *MemoryEventRepository) Create(ctx context.Context, event Event) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.ID = r.nextID
	r.nextID++
	r.events = append(r.events, event)
	return event, nil
}

func (r *MemoryEventRepository) Update(ctx context.Context, event Event) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.ID == event.ID {
			r.events[i] = event
			return event, nil
		}
	}
	return Event{}, ErrEventNotFound
}

func (r *MemoryEventRepository) UpdateBudget(ctx context.Context, id int, amount float64) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.ID == id {
			r.events[i].ActualBudget = amount
			return r.events[i], nil
		}
	}
	return Event{}, ErrEventNotFound
}

func (r *MemoryEventRepository) ListByStatus(ctx context.Context, status Status) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var events []Event
	for _, e := range r.events {
		if e.Status == status {
			events = append(events, e)
		}
	}
	return events, nil
}
