package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// DashboardQuery selects the window the dashboard is computed over. Every
// field is optional. Month and Year must be given together and take
// precedence over StartDate and EndDate.
type DashboardQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
	Month     *int
	Year      *int
}

// CategorySpending is the expense total of one category. A nil CategoryID is
// the bucket of uncategorized expenses.
type CategorySpending struct {
	CategoryID       *uuid.UUID
	CategoryName     *string
	CategoryColor    *string
	TotalAmount      decimal.Decimal
	TransactionCount int
}

// MonthlyTrend summarizes one calendar month (UTC) that had activity.
type MonthlyTrend struct {
	Month         int
	Year          int
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetAmount     decimal.Decimal
}

// Totals is the income and expense summary of the whole window.
type Totals struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetAmount     decimal.Decimal
}

// BudgetStatus reports how much of a monthly budget has been used.
// RemainingAmount goes negative when the budget is exceeded. CategoryName is
// nil when the category no longer exists.
type BudgetStatus struct {
	CategoryID      uuid.UUID
	CategoryName    *string
	Month           int
	Year            int
	BudgetLimit     decimal.Decimal
	SpentAmount     decimal.Decimal
	RemainingAmount decimal.Decimal
	PercentageUsed  decimal.Decimal
}

// Dashboard is the combined summary for one query.
type Dashboard struct {
	CategorySpending []CategorySpending
	MonthlyTrends    []MonthlyTrend
	Totals
	BudgetStatus []BudgetStatus
}
