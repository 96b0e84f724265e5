package service

import (
	"bytes"
	"cmp"
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

var hundred = decimal.NewFromInt(100)

// BudgetStatusCalculator measures each budget against the expenses of its
// own category and month.
type BudgetStatusCalculator struct {
	budgets      sqlconfig.IBudgetTable
	transactions sqlconfig.ITransactionTable
	categories   sqlconfig.ICategoryTable
}

func NewBudgetStatusCalculator(
	budgets sqlconfig.IBudgetTable,
	transactions sqlconfig.ITransactionTable,
	categories sqlconfig.ICategoryTable,
) *BudgetStatusCalculator {
	return &BudgetStatusCalculator{
		budgets:      budgets,
		transactions: transactions,
		categories:   categories,
	}
}

// Calculate returns the status of every budget matching filter. A nil filter
// covers all budgets.
func (c *BudgetStatusCalculator) Calculate(ctx context.Context, filter *sqlconfig.BudgetFilter) ([]BudgetStatus, error) {
	budgets, err := c.budgets.List(ctx, filter)
	if err != nil {
		return nil, unavailable(err)
	}

	expense := sqlconfig.TransactionTypeExpense
	logData := logging.GetLogData(ctx)
	lookup := newCategoryLookup(c.categories)
	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		categoryID := budget.CategoryID
		var stopTimer func()
		if logData != nil {
			stopTimer = logData.AddToExistingTiming("budgetSpentQueryMs")
		}
		rows, err := c.transactions.List(ctx, &sqlconfig.TransactionFilter{
			Type:       &expense,
			CategoryID: &categoryID,
			Range:      budget.Period(),
		})
		if stopTimer != nil {
			stopTimer()
		}
		if err != nil {
			return nil, unavailable(err)
		}

		spent := decimal.Zero
		for _, row := range rows {
			spent = spent.Add(row.Amount)
		}

		status := newBudgetStatus(budget, spent)
		category, err := lookup.find(ctx, budget.CategoryID)
		if err != nil {
			return nil, unavailable(err)
		}
		if category != nil {
			name := category.Name
			status.CategoryName = &name
		}
		statuses = append(statuses, status)
	}

	sortBudgetStatus(statuses)
	return statuses, nil
}

func newBudgetStatus(budget *sqlconfig.Budget, spent decimal.Decimal) BudgetStatus {
	return BudgetStatus{
		CategoryID:      budget.CategoryID,
		Month:           budget.Month,
		Year:            budget.Year,
		BudgetLimit:     budget.MonthlyLimit,
		SpentAmount:     spent,
		RemainingAmount: budget.MonthlyLimit.Sub(spent),
		PercentageUsed:  percentageUsed(spent, budget.MonthlyLimit),
	}
}

// percentageUsed is spent as a percentage of limit, or 0 when nothing was
// spent or the limit is not positive.
func percentageUsed(spent, limit decimal.Decimal) decimal.Decimal {
	if spent.IsZero() || !limit.IsPositive() {
		return decimal.Zero
	}
	return spent.Mul(hundred).Div(limit)
}

// sortBudgetStatus orders by period, then category name with unnamed
// categories last, then category id.
func sortBudgetStatus(statuses []BudgetStatus) {
	slices.SortFunc(statuses, func(a, b BudgetStatus) int {
		return cmp.Or(
			cmp.Compare(a.Year, b.Year),
			cmp.Compare(a.Month, b.Month),
			compareNames(a.CategoryName, b.CategoryName),
			bytes.Compare(a.CategoryID.Bytes(), b.CategoryID.Bytes()),
		)
	})
}

func compareNames(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return cmp.Compare(*a, *b)
}
