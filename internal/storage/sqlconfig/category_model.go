package sqlconfig

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

// ErrCategoryNotFound is returned by writes that reference a category id
// with no matching row.
var ErrCategoryNotFound = errors.New("category not found")

// Category represents a category record.
type Category struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Color     *string   `db:"color"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	Name  string
	Color *string
}

// ICategoryTable defines the interface for category storage operations.
// FindByID returns nil, nil when no category has the given id.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	List(ctx context.Context) ([]*Category, error)
}
