package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// TotalsAggregator sums income and expenses over the whole range.
type TotalsAggregator struct {
	transactions sqlconfig.ITransactionTable
}

func NewTotalsAggregator(transactions sqlconfig.ITransactionTable) *TotalsAggregator {
	return &TotalsAggregator{transactions: transactions}
}

func (a *TotalsAggregator) Aggregate(ctx context.Context, dateRange sqlconfig.DateRange) (Totals, error) {
	rows, err := a.transactions.List(ctx, &sqlconfig.TransactionFilter{Range: dateRange})
	if err != nil {
		return Totals{}, unavailable(err)
	}
	return sumTotals(rows), nil
}

func sumTotals(rows []*sqlconfig.Transaction) Totals {
	totals := Totals{TotalIncome: decimal.Zero, TotalExpenses: decimal.Zero}
	for _, row := range rows {
		switch row.Type {
		case sqlconfig.TransactionTypeIncome:
			totals.TotalIncome = totals.TotalIncome.Add(row.Amount)
		case sqlconfig.TransactionTypeExpense:
			totals.TotalExpenses = totals.TotalExpenses.Add(row.Amount)
		}
	}
	totals.NetAmount = totals.TotalIncome.Sub(totals.TotalExpenses)
	return totals
}
