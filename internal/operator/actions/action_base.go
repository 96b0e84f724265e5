package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/events"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// ErrInvalidInput is returned by Perform before any write when the action's
// fields are out of range.
var ErrInvalidInput = errors.New("invalid input")

// IAction is a unit of work performed inside one storage transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
	// Event describes the committed change, or nil if there is none.
	Event() *events.LedgerEvent
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func requireCategory(ctx context.Context, writer *storage.Writer, id uuid.UUID) error {
	category, err := writer.Categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: %s", sqlconfig.ErrCategoryNotFound, id)
	}
	return nil
}
