package category

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type CategoryRepo interface {
	GetAll(ctx context.Context) ([]Category, error)
}

type CategoryRepoImpl struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepoImpl {
	return &CategoryRepoImpl{db: db}
}

func (r *CategoryRepoImpl) GetAll(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		err := fmt.Errorf("could not query categories: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			err := fmt.Errorf("could not scan category: %w", err)
			log.Error(err)
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// MemoryCategoryRepo is the demo-mode fallback.
type MemoryCategoryRepo struct {
	categories []Category
}

func NewMemoryCategoryRepo() *MemoryCategoryRepo {
	return &MemoryCategoryRepo{categories: []Category{
		{ID: 1, Name: "Conference"},
		{ID: 2, Name: "Seminar"},
		{ID: 3, Name: "Training"},
		{ID: 4, Name: "Corporate Party"},
		{ID: 5, Name: "Presentation"},
	}}
}

func (r *MemoryCategoryRepo) GetAll(ctx context.Context) ([]Category, error) {
	categories := make([]Category, len(r.categories))
	copy(categories, r.categories)
	return categories, nil
}
