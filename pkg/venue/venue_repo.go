package venue

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type VenueRepo interface {
	GetAll(ctx context.Context) ([]Venue, error)
}

type VenueRepoImpl struct {
	db *sql.DB
}

func NewVenueRepo(db *sql.DB) *VenueRepoImpl {
	return &VenueRepoImpl{db: db}
}

func (r *VenueRepoImpl) GetAll(ctx context.Context) ([]Venue, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, address, capacity FROM venues ORDER BY id")
	if err != nil {
		err := fmt.Errorf("could not query venues: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var venues []Venue
	for rows.Next() {
		var v Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.Capacity); err != nil {
			err := fmt.Errorf("could not scan venue: %w", err)
			log.Error(err)
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

// MemoryVenueRepo is the demo-mode fallback.
type MemoryVenueRepo struct {
	venues []Venue
}

func NewMemoryVenueRepo() *MemoryVenueRepo {
	return &MemoryVenueRepo{venues: []Venue{
		{ID: 1, Name: "Conference Hall A", Address: "12 Central Ave", Capacity: 250},
		{ID: 2, Name: "Meeting Room B", Address: "12 Central Ave", Capacity: 30},
		{ID: 3, Name: "Online", Address: "", Capacity: 1000},
	}}
}

func (r *MemoryVenueRepo) GetAll(ctx context.Context) ([]Venue, error) {
	venues := make([]Venue, len(r.venues))
	copy(venues, r.venues)
	return venues, nil
}
