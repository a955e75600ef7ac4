package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrEventNotFound = fmt.Errorf("event not found")

type EventRepository interface {
	GetAll(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id int) (Event, error)
	Create(ctx context.Context, event Event) (Event, error)
	// Update replaces all mutable fields of the event in a single statement,
	// so a partial update is not possible.
	Update(ctx context.Context, event Event) (Event, error)
	// UpdateBudget changes the actual budget only. It never touches status.
	UpdateBudget(ctx context.Context, id int, amount float64) (Event, error)
	ListByStatus(ctx context.Context, status Status) ([]Event, error)
}

type EventRepoImpl struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepoImpl {
	return &EventRepoImpl{db: db}
}

const eventColumns = `id, name, description, start_time, end_time, status,
		estimated_budget, actual_budget, max_guests, category_id, venue_id, manager_id`

func (r *EventRepoImpl) GetAll(ctx context.Context) ([]Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events ORDER BY start_time", eventColumns)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query events: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepoImpl) GetByID(ctx context.Context, id int) (Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE id = $1", eventColumns)
	row := r.db.QueryRowContext(ctx, query, id)

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Event{}, ErrEventNotFound
		}
		err := fmt.Errorf("could not scan event: %w", err)
		log.Error(err)
		return Event{}, err
	}
	return event, nil
}

func (r *EventRepoImpl) Create(ctx context.Context, event Event) (Event, error) {
	query := `INSERT INTO events (
			name,
			description,
			start_time,
			end_time,
			status,
			estimated_budget,
			actual_budget,
			max_guests,
			category_id,
			venue_id,
			manager_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return Event{}, err
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(ctx,
		event.Name,
		event.Description,
		event.StartTime,
		event.EndTime,
		event.Status,
		event.EstimatedBudget,
		event.ActualBudget,
		event.MaxGuests,
		event.CategoryID,
		event.VenueID,
		event.ManagerID,
	).Scan(&event.ID)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return Event{}, err
	}

	return event, nil
}

func (r *EventRepoImpl) Update(ctx context.Context, event Event) (Event, error) {
	query := `UPDATE events SET
			name = $1,
			description = $2,
			start_time = $3,
			end_time = $4,
			status = $5,
			estimated_budget = $6,
			actual_budget = $7,
			max_guests = $8,
			category_id = $9,
			venue_id = $10,
			manager_id = $11
		WHERE id = $12`

	result, err := r.db.ExecContext(ctx, query,
		event.Name,
		event.Description,
		event.StartTime,
		event.EndTime,
		event.Status,
		event.EstimatedBudget,
		event.ActualBudget,
		event.MaxGuests,
		event.CategoryID,
		event.VenueID,
		event.ManagerID,
		event.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return Event{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not read affected rows: %w", err)
		log.Error(err)
		return Event{}, err
	}
	if affected == 0 {
		return Event{}, ErrEventNotFound
	}

	return event, nil
}

func (r *EventRepoImpl) UpdateBudget(ctx context.Context, id int, amount float64) (Event, error) {
	query := "UPDATE events SET actual_budget = $1 WHERE id = $2"

	result, err := r.db.ExecContext(ctx, query, amount, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return Event{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not read affected rows: %w", err)
		log.Error(err)
		return Event{}, err
	}
	if affected == 0 {
		return Event{}, ErrEventNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *EventRepoImpl) ListByStatus(ctx context.Context, status Status) ([]Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE status = $1 ORDER BY start_time", eventColumns)
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		err := fmt.Errorf("could not query events by status: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (Event, error) {
	var event Event
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.StartTime,
		&event.EndTime,
		&event.Status,
		&event.EstimatedBudget,
		&event.ActualBudget,
		&event.MaxGuests,
		&event.CategoryID,
		&event.VenueID,
		&event.ManagerID,
	)
	return event, err
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	var events []Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			err := fmt.Errorf("could not scan event: %w", err)
			log.Error(err)
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("could not iterate events: %w", err)
		log.Error(err)
		return nil, err
	}
	return events, nil
}
