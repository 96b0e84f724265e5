package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly spending limit for one category.
type Budget struct {
	ID           uuid.UUID       `db:"id"`
	CategoryID   uuid.UUID       `db:"category_id"`
	MonthlyLimit decimal.Decimal `db:"monthly_limit"`
	Month        int             `db:"month"`
	Year         int             `db:"year"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// Period is the calendar month the budget applies to.
func (b *Budget) Period() DateRange {
	return MonthRange(b.Year, time.Month(b.Month))
}

// BudgetUpsert is the input for creating or replacing the budget of a
// (category, month, year) period.
type BudgetUpsert struct {
	CategoryID   uuid.UUID
	MonthlyLimit decimal.Decimal
	Month        int
	Year         int
}

// BudgetFilter narrows a budget listing to an exact month and/or year.
type BudgetFilter struct {
	Month *int
	Year  *int
}

// Matches evaluates the filter against a single budget.
func (f *BudgetFilter) Matches(b *Budget) bool {
	if f == nil {
		return true
	}
	if f.Month != nil && b.Month != *f.Month {
		return false
	}
	if f.Year != nil && b.Year != *f.Year {
		return false
	}
	return true
}

// IBudgetTable defines the interface for budget storage operations.
// Upsert must be atomic: concurrent calls for the same period leave exactly
// one row, holding the limit of whichever call committed last.
//
//go:generate mockery --name IBudgetTable --output mock_IBudgetTable.go
type IBudgetTable interface {
	Upsert(ctx context.Context, upsert *BudgetUpsert) (*Budget, error)
	List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error)
}
