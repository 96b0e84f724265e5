package actions

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/events"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	Amount          decimal.Decimal
	Description     string
	Type            sqlconfig.TransactionType
	CategoryID      *uuid.UUID
	TransactionDate time.Time

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if !t.Amount.IsPositive() {
		return invalid("amount must be positive")
	}
	if !t.Amount.Equal(t.Amount.Round(2)) {
		return invalid("amount has more than two decimal places")
	}
	if !t.Type.Valid() {
		return invalid("unknown transaction type %q", t.Type)
	}

	create := &sqlconfig.TransactionCreate{
		Amount:          t.Amount,
		Description:     strings.TrimSpace(t.Description),
		Type:            t.Type,
		TransactionDate: t.TransactionDate.UTC(),
	}
	if t.CategoryID != nil {
		if err := requireCategory(ctx, writer, *t.CategoryID); err != nil {
			return err
		}
		create.CategoryID = uuid.NullUUID{UUID: *t.CategoryID, Valid: true}
	}

	id, err := writer.Transactions.Insert(ctx, create)
	if err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}

func (t *CreateTransaction) Event() *events.LedgerEvent {
	if t.CreatedID == uuid.Nil {
		return nil
	}
	event := events.NewLedgerEvent(events.KindTransactionCreated, t.CreatedID)
	return &event
}
