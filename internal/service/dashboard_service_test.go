package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

func TestComputeDashboard_Month(t *testing.T) {
	f := newLedgerFixture(t)
	a := f.category("A")
	b := f.category("B")
	f.expense(a, "50.00", day(2025, 3, 15))
	f.expense(a, "75.50", day(2025, 3, 20))
	f.expense(b, "15.25", day(2025, 3, 10))
	f.income("2000.00", day(2025, 3, 1))
	f.expense(b, "99.00", day(2025, 4, 2))
	f.budget(a, "100.00", 3, 2025)
	f.budget(b, "100.00", 4, 2025)

	svc := NewDashboardService(f.storage(), time.Second)
	dashboard, err := svc.ComputeDashboard(context.Background(), DashboardQuery{Month: ptr(3), Year: ptr(2025)})
	require.NoError(t, err)

	require.Len(t, dashboard.CategorySpending, 2)
	assert.Equal(t, a, *dashboard.CategorySpending[0].CategoryID)
	assert.True(t, dashboard.CategorySpending[0].TotalAmount.Equal(dec("125.50")))

	require.Len(t, dashboard.MonthlyTrends, 1)
	assert.True(t, dashboard.TotalIncome.Equal(dec("2000.00")))
	assert.True(t, dashboard.TotalExpenses.Equal(dec("140.75")))
	assert.True(t, dashboard.NetAmount.Equal(dec("1859.25")))

	require.Len(t, dashboard.BudgetStatus, 1, "only the queried month's budgets")
	assert.True(t, dashboard.BudgetStatus[0].RemainingAmount.Equal(dec("-25.50")))
}

func TestComputeDashboard_SumInvariants(t *testing.T) {
	f := newLedgerFixture(t)
	cats := []uuid.UUID{f.category("A"), f.category("B"), f.category("C")}
	for i := 0; i < 40; i++ {
		date := day(2024, time.Month(i%12+1), i%28+1)
		amount := decimal.New(int64(i*37%1000+1), -2).String()
		switch i % 4 {
		case 0:
			f.income(amount, date)
		case 1:
			f.uncategorizedExpense(amount, date)
		default:
			f.expense(cats[i%3], amount, date)
		}
	}

	start := day(2024, 3, 1)
	end := day(2024, 9, 30)
	queries := []DashboardQuery{
		{},
		{StartDate: &start, EndDate: &end},
		{Month: ptr(6), Year: ptr(2024)},
	}

	svc := NewDashboardService(f.storage(), 0)
	for _, query := range queries {
		dashboard, err := svc.ComputeDashboard(context.Background(), query)
		require.NoError(t, err)

		spent := decimal.Zero
		for _, c := range dashboard.CategorySpending {
			spent = spent.Add(c.TotalAmount)
		}
		assert.True(t, spent.Equal(dashboard.TotalExpenses), "category totals %s != expenses %s", spent, dashboard.TotalExpenses)
		assert.True(t, dashboard.TotalIncome.Sub(dashboard.TotalExpenses).Equal(dashboard.NetAmount))

		trendNet := decimal.Zero
		for _, m := range dashboard.MonthlyTrends {
			trendNet = trendNet.Add(m.NetAmount)
		}
		assert.True(t, trendNet.Equal(dashboard.NetAmount))
	}
}

func TestComputeDashboard_InvalidQueryReadsNothing(t *testing.T) {
	store := &storage.Storage{
		Categories:   sqlconfig.NewMockICategoryTable(t),
		Transactions: sqlconfig.NewMockITransactionTable(t),
		Budgets:      sqlconfig.NewMockIBudgetTable(t),
	}

	dashboard, err := NewDashboardService(store, time.Second).
		ComputeDashboard(context.Background(), DashboardQuery{Month: ptr(13), Year: ptr(2025)})

	assert.ErrorIs(t, err, ErrInvalidQuery)
	assert.Nil(t, dashboard)
}

func TestComputeDashboard_StageFailure(t *testing.T) {
	transactions := sqlconfig.NewMockITransactionTable(t)
	budgets := sqlconfig.NewMockIBudgetTable(t)
	store := &storage.Storage{
		Categories:   sqlconfig.NewMockICategoryTable(t),
		Transactions: transactions,
		Budgets:      budgets,
	}

	// Every transaction read succeeds; only the budget listing fails.
	transactions.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	budgets.EXPECT().List(mock.Anything, (*sqlconfig.BudgetFilter)(nil)).Return(nil, errors.New("connection refused"))

	dashboard, err := NewDashboardService(store, time.Second).
		ComputeDashboard(context.Background(), DashboardQuery{})

	assert.Nil(t, dashboard, "no partial dashboard")
	assert.ErrorIs(t, err, ErrPersistenceUnavailable)
	assert.ErrorContains(t, err, "budget status: ")
	assert.ErrorContains(t, err, "connection refused")
}

// Stages read the ledger separately, not inside one transaction. A write that
// lands between two reads shows up in one stage and not the other; the
// dashboard is still returned, and the cross-stage sums are only guaranteed
// over a quiet ledger.
func TestComputeDashboard_StagesMayObserveDifferentSnapshots(t *testing.T) {
	transactions := sqlconfig.NewMockITransactionTable(t)
	budgets := sqlconfig.NewMockIBudgetTable(t)
	store := &storage.Storage{
		Categories:   sqlconfig.NewMockICategoryTable(t),
		Transactions: transactions,
		Budgets:      budgets,
	}

	before := &sqlconfig.Transaction{ID: uuid.Must(uuid.NewV4()), Amount: dec("10.00"), Type: sqlconfig.TransactionTypeExpense, TransactionDate: day(2025, 3, 1)}
	after := &sqlconfig.Transaction{ID: uuid.Must(uuid.NewV4()), Amount: dec("5.00"), Type: sqlconfig.TransactionTypeExpense, TransactionDate: day(2025, 3, 2)}

	// Category spending reads before the write commits, trends and totals after.
	transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Type != nil
	})).Return([]*sqlconfig.Transaction{before}, nil)
	transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Type == nil
	})).Return([]*sqlconfig.Transaction{before, after}, nil)
	budgets.EXPECT().List(mock.Anything, (*sqlconfig.BudgetFilter)(nil)).Return(nil, nil)

	dashboard, err := NewDashboardService(store, time.Second).
		ComputeDashboard(context.Background(), DashboardQuery{})
	require.NoError(t, err)

	require.Len(t, dashboard.CategorySpending, 1)
	assert.True(t, dashboard.CategorySpending[0].TotalAmount.Equal(dec("10.00")))
	assert.True(t, dashboard.TotalExpenses.Equal(dec("15.00")))
}

func TestComputeDashboard_Timeout(t *testing.T) {
	transactions := sqlconfig.NewMockITransactionTable(t)
	budgets := sqlconfig.NewMockIBudgetTable(t)
	store := &storage.Storage{
		Categories:   sqlconfig.NewMockICategoryTable(t),
		Transactions: transactions,
		Budgets:      budgets,
	}

	blockUntilDone := func(args mock.Arguments) {
		<-args.Get(0).(context.Context).Done()
	}
	transactions.EXPECT().List(mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Run(blockUntilDone).Maybe()
	budgets.EXPECT().List(mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Run(blockUntilDone).Maybe()

	_, err := NewDashboardService(store, 20*time.Millisecond).
		ComputeDashboard(context.Background(), DashboardQuery{})

	assert.ErrorIs(t, err, ErrPersistenceUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestComputeDashboard_RecordsTimings(t *testing.T) {
	f := newLedgerFixture(t)
	f.income("1.00", day(2025, 1, 1))
	food := f.category("Food")
	f.budget(food, "50.00", 1, 2025)
	f.budget(food, "50.00", 2, 2025)

	logData := logging.NewLogData(logging.SetupLogging("error"))
	ctx := logging.WithLogData(context.Background(), logData)

	_, err := NewDashboardService(f.storage(), time.Second).ComputeDashboard(ctx, DashboardQuery{})
	require.NoError(t, err)

	fields := logData.Log().Data
	for _, key := range []string{"categorySpendingMs", "monthlyTrendsMs", "totalsMs", "budgetStatusMs", "budgetSpentQueryMs", "trendMonths"} {
		assert.Contains(t, fields, key)
	}
}
