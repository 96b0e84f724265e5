package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// categoryLookup memoizes FindByID for the duration of one aggregation. A
// category that no longer exists resolves to nil.
type categoryLookup struct {
	categories sqlconfig.ICategoryTable
	seen       map[uuid.UUID]*sqlconfig.Category
}

func newCategoryLookup(categories sqlconfig.ICategoryTable) *categoryLookup {
	return &categoryLookup{
		categories: categories,
		seen:       make(map[uuid.UUID]*sqlconfig.Category),
	}
}

func (l *categoryLookup) find(ctx context.Context, id uuid.UUID) (*sqlconfig.Category, error) {
	if c, ok := l.seen[id]; ok {
		return c, nil
	}
	c, err := l.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	l.seen[id] = c
	return c, nil
}
