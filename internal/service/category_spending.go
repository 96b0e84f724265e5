package service

import (
	"bytes"
	"context"
	"slices"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// CategorySpendingAggregator totals expenses per category.
type CategorySpendingAggregator struct {
	transactions sqlconfig.ITransactionTable
	categories   sqlconfig.ICategoryTable
}

func NewCategorySpendingAggregator(transactions sqlconfig.ITransactionTable, categories sqlconfig.ICategoryTable) *CategorySpendingAggregator {
	return &CategorySpendingAggregator{
		transactions: transactions,
		categories:   categories,
	}
}

// Aggregate returns one entry per category with expenses in the range,
// largest total first.
func (a *CategorySpendingAggregator) Aggregate(ctx context.Context, dateRange sqlconfig.DateRange) ([]CategorySpending, error) {
	expense := sqlconfig.TransactionTypeExpense
	rows, err := a.transactions.List(ctx, &sqlconfig.TransactionFilter{
		Type:  &expense,
		Range: dateRange,
	})
	if err != nil {
		return nil, unavailable(err)
	}

	spending := groupByCategory(rows)

	lookup := newCategoryLookup(a.categories)
	for i := range spending {
		if spending[i].CategoryID == nil {
			continue
		}
		category, err := lookup.find(ctx, *spending[i].CategoryID)
		if err != nil {
			return nil, unavailable(err)
		}
		if category != nil {
			name := category.Name
			spending[i].CategoryName = &name
			spending[i].CategoryColor = category.Color
		}
	}
	return spending, nil
}

// groupByCategory sums rows per category and orders the result by total
// descending, then category id ascending, with uncategorized last among equal
// totals.
func groupByCategory(rows []*sqlconfig.Transaction) []CategorySpending {
	index := make(map[uuid.NullUUID]int)
	var spending []CategorySpending
	for _, row := range rows {
		i, ok := index[row.CategoryID]
		if !ok {
			entry := CategorySpending{TotalAmount: decimal.Zero}
			if row.CategoryID.Valid {
				id := row.CategoryID.UUID
				entry.CategoryID = &id
			}
			i = len(spending)
			index[row.CategoryID] = i
			spending = append(spending, entry)
		}
		spending[i].TotalAmount = spending[i].TotalAmount.Add(row.Amount)
		spending[i].TransactionCount++
	}

	slices.SortFunc(spending, func(a, b CategorySpending) int {
		if c := b.TotalAmount.Cmp(a.TotalAmount); c != 0 {
			return c
		}
		switch {
		case a.CategoryID == nil && b.CategoryID == nil:
			return 0
		case a.CategoryID == nil:
			return 1
		case b.CategoryID == nil:
			return -1
		}
		return bytes.Compare(a.CategoryID.Bytes(), b.CategoryID.Bytes())
	})
	return spending
}
