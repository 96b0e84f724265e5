package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/events"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

const minBudgetYear = 2000

// UpsertBudget sets the limit of a category for one month, creating the
// budget if it does not exist yet.
type UpsertBudget struct {
	CategoryID   uuid.UUID
	MonthlyLimit decimal.Decimal
	Month        int
	Year         int

	// Result holds the stored budget once Perform succeeds.
	Result *sqlconfig.Budget
}

func (b *UpsertBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if !b.MonthlyLimit.IsPositive() {
		return invalid("monthly limit must be positive")
	}
	if b.Month < 1 || b.Month > 12 {
		return invalid("month %d outside 1..12", b.Month)
	}
	if b.Year < minBudgetYear {
		return invalid("year %d before %d", b.Year, minBudgetYear)
	}
	if err := requireCategory(ctx, writer, b.CategoryID); err != nil {
		return err
	}

	budget, err := writer.Budgets.Upsert(ctx, &sqlconfig.BudgetUpsert{
		CategoryID:   b.CategoryID,
		MonthlyLimit: b.MonthlyLimit,
		Month:        b.Month,
		Year:         b.Year,
	})
	if err != nil {
		return err
	}

	b.Result = budget
	return nil
}

func (b *UpsertBudget) Event() *events.LedgerEvent {
	if b.Result == nil {
		return nil
	}
	event := events.NewLedgerEvent(events.KindBudgetUpserted, b.Result.ID)
	return &event
}
