package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// MonthlyTrendAggregator buckets income and expenses by calendar month.
type MonthlyTrendAggregator struct {
	transactions sqlconfig.ITransactionTable
}

func NewMonthlyTrendAggregator(transactions sqlconfig.ITransactionTable) *MonthlyTrendAggregator {
	return &MonthlyTrendAggregator{transactions: transactions}
}

// Aggregate returns a trend entry for each month in the range that has at
// least one transaction, oldest first. Months without activity are omitted,
// not zero-filled.
func (a *MonthlyTrendAggregator) Aggregate(ctx context.Context, dateRange sqlconfig.DateRange) ([]MonthlyTrend, error) {
	rows, err := a.transactions.List(ctx, &sqlconfig.TransactionFilter{Range: dateRange})
	if err != nil {
		return nil, unavailable(err)
	}
	return bucketByMonth(rows), nil
}

type monthKey struct {
	year  int
	month int
}

func bucketByMonth(rows []*sqlconfig.Transaction) []MonthlyTrend {
	index := make(map[monthKey]int)
	var trends []MonthlyTrend
	for _, row := range rows {
		date := row.TransactionDate.UTC()
		key := monthKey{year: date.Year(), month: int(date.Month())}
		i, ok := index[key]
		if !ok {
			i = len(trends)
			index[key] = i
			trends = append(trends, MonthlyTrend{
				Month:         key.month,
				Year:          key.year,
				TotalIncome:   decimal.Zero,
				TotalExpenses: decimal.Zero,
			})
		}
		switch row.Type {
		case sqlconfig.TransactionTypeIncome:
			trends[i].TotalIncome = trends[i].TotalIncome.Add(row.Amount)
		case sqlconfig.TransactionTypeExpense:
			trends[i].TotalExpenses = trends[i].TotalExpenses.Add(row.Amount)
		}
	}

	for i := range trends {
		trends[i].NetAmount = trends[i].TotalIncome.Sub(trends[i].TotalExpenses)
	}
	slices.SortFunc(trends, func(a, b MonthlyTrend) int {
		return cmp.Or(cmp.Compare(a.Year, b.Year), cmp.Compare(a.Month, b.Month))
	})
	return trends
}
