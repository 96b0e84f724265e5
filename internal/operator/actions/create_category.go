package actions

import (
	"context"
	"regexp"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/events"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

const maxCategoryNameLength = 100

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type CreateCategory struct {
	Name  string
	Color *string

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return invalid("category name is empty")
	}
	if len(name) > maxCategoryNameLength {
		return invalid("category name longer than %d characters", maxCategoryNameLength)
	}
	if c.Color != nil && !colorPattern.MatchString(*c.Color) {
		return invalid("color %q is not #RRGGBB", *c.Color)
	}

	id, err := writer.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		Name:  name,
		Color: c.Color,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}

func (c *CreateCategory) Event() *events.LedgerEvent {
	if c.CreatedID == uuid.Nil {
		return nil
	}
	event := events.NewLedgerEvent(events.KindCategoryCreated, c.CreatedID)
	return &event
}
