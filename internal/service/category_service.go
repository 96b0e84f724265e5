package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/storage"
)

// Category represents a category in the service layer.
type Category struct {
	ID    uuid.UUID
	Name  string
	Color *string
}

// CategoryService handles category reads.
type CategoryService struct {
	storage *storage.Storage
}

func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// ListCategories returns every category ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx)
	if err != nil {
		return nil, unavailable(err)
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = Category{
			ID:    row.ID,
			Name:  row.Name,
			Color: row.Color,
		}
	}
	return categories, nil
}
