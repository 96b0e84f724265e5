package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/storage"
)

const (
	stageCategorySpending = "category spending"
	stageMonthlyTrends    = "monthly trends"
	stageTotals           = "totals"
	stageBudgetStatus     = "budget status"
)

// DashboardService composes the dashboard from the individual aggregators.
type DashboardService struct {
	categorySpending *CategorySpendingAggregator
	monthlyTrends    *MonthlyTrendAggregator
	totals           *TotalsAggregator
	budgetStatus     *BudgetStatusCalculator
	timeout          time.Duration
}

// NewDashboardService wires the aggregators to store. A zero timeout leaves
// the caller's deadline in charge.
func NewDashboardService(store *storage.Storage, timeout time.Duration) *DashboardService {
	return &DashboardService{
		categorySpending: NewCategorySpendingAggregator(store.Transactions, store.Categories),
		monthlyTrends:    NewMonthlyTrendAggregator(store.Transactions),
		totals:           NewTotalsAggregator(store.Transactions),
		budgetStatus:     NewBudgetStatusCalculator(store.Budgets, store.Transactions, store.Categories),
		timeout:          timeout,
	}
}

// ComputeDashboard validates the query and runs every aggregation
// concurrently. Any failure fails the whole dashboard; the error names the
// stage that failed.
//
// The stages read the ledger independently, outside a shared transaction, so
// a write landing mid-computation may be visible to some stages and not
// others.
func (s *DashboardService) ComputeDashboard(ctx context.Context, query DashboardQuery) (*Dashboard, error) {
	dateRange, err := NormalizeQuery(query)
	if err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	logData := logging.GetLogData(ctx)
	dashboard := &Dashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(stage(logData, stageCategorySpending, "categorySpendingMs", func() (err error) {
		dashboard.CategorySpending, err = s.categorySpending.Aggregate(gctx, dateRange)
		return err
	}))
	g.Go(stage(logData, stageMonthlyTrends, "monthlyTrendsMs", func() (err error) {
		dashboard.MonthlyTrends, err = s.monthlyTrends.Aggregate(gctx, dateRange)
		return err
	}))
	g.Go(stage(logData, stageTotals, "totalsMs", func() (err error) {
		dashboard.Totals, err = s.totals.Aggregate(gctx, dateRange)
		return err
	}))
	g.Go(stage(logData, stageBudgetStatus, "budgetStatusMs", func() (err error) {
		dashboard.BudgetStatus, err = s.budgetStatus.Calculate(gctx, budgetFilter(query))
		return err
	}))

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if logData != nil {
		logData.AddData("categoryCount", len(dashboard.CategorySpending))
		logData.AddData("trendMonths", len(dashboard.MonthlyTrends))
		logData.AddData("budgetCount", len(dashboard.BudgetStatus))
	}
	return dashboard, nil
}

func stage(logData *logging.LogData, name, timingKey string, fn func() error) func() error {
	return func() error {
		if logData != nil {
			defer logData.AddTiming(timingKey)()
		}
		if err := fn(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}
}
