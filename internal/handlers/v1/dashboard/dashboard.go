package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/service"
)

// CategorySpending is one row of the category breakdown.
type CategorySpending struct {
	CategoryID       *string `json:"category_id" doc:"Category UUID, null for uncategorized expenses"`
	CategoryName     *string `json:"category_name" doc:"Category name, null when unknown"`
	CategoryColor    *string `json:"category_color" doc:"Category colour"`
	TotalAmount      float64 `json:"total_amount" doc:"Sum of expenses"`
	TransactionCount int     `json:"transaction_count" doc:"Number of expenses"`
}

// MonthlyTrend is the activity of one calendar month.
type MonthlyTrend struct {
	Month         int     `json:"month" doc:"Month 1-12"`
	Year          int     `json:"year" doc:"Year"`
	TotalIncome   float64 `json:"total_income" doc:"Income in the month"`
	TotalExpenses float64 `json:"total_expenses" doc:"Expenses in the month"`
	NetAmount     float64 `json:"net_amount" doc:"Income minus expenses"`
}

// BudgetStatus is the consumption of one monthly budget.
type BudgetStatus struct {
	CategoryID      string  `json:"category_id" doc:"Category UUID"`
	CategoryName    *string `json:"category_name" doc:"Category name, null when the category no longer exists"`
	Month           int     `json:"month" doc:"Budget month 1-12"`
	Year            int     `json:"year" doc:"Budget year"`
	BudgetLimit     float64 `json:"budget_limit" doc:"Monthly limit"`
	SpentAmount     float64 `json:"spent_amount" doc:"Expenses in the budget's month"`
	RemainingAmount float64 `json:"remaining_amount" doc:"Limit minus spent, negative when over budget"`
	PercentageUsed  float64 `json:"percentage_used" doc:"Spent as a percentage of the limit"`
}

// DashboardBody is the dashboard response.
type DashboardBody struct {
	CategorySpending []CategorySpending `json:"category_spending"`
	MonthlyTrends    []MonthlyTrend     `json:"monthly_trends"`
	TotalIncome      float64            `json:"total_income"`
	TotalExpenses    float64            `json:"total_expenses"`
	NetAmount        float64            `json:"net_amount"`
	BudgetStatus     []BudgetStatus     `json:"budget_status"`
}

// NewDashboardBody converts a computed dashboard to its wire form. This is
// the only place money leaves decimal.
func NewDashboardBody(d *service.Dashboard) DashboardBody {
	body := DashboardBody{
		CategorySpending: make([]CategorySpending, len(d.CategorySpending)),
		MonthlyTrends:    make([]MonthlyTrend, len(d.MonthlyTrends)),
		TotalIncome:      toFloat(d.TotalIncome),
		TotalExpenses:    toFloat(d.TotalExpenses),
		NetAmount:        toFloat(d.NetAmount),
		BudgetStatus:     make([]BudgetStatus, len(d.BudgetStatus)),
	}

	for i, c := range d.CategorySpending {
		body.CategorySpending[i] = CategorySpending{
			CategoryName:     c.CategoryName,
			CategoryColor:    c.CategoryColor,
			TotalAmount:      toFloat(c.TotalAmount),
			TransactionCount: c.TransactionCount,
		}
		if c.CategoryID != nil {
			id := c.CategoryID.String()
			body.CategorySpending[i].CategoryID = &id
		}
	}

	for i, m := range d.MonthlyTrends {
		body.MonthlyTrends[i] = MonthlyTrend{
			Month:         m.Month,
			Year:          m.Year,
			TotalIncome:   toFloat(m.TotalIncome),
			TotalExpenses: toFloat(m.TotalExpenses),
			NetAmount:     toFloat(m.NetAmount),
		}
	}

	for i, b := range d.BudgetStatus {
		body.BudgetStatus[i] = BudgetStatus{
			CategoryID:      b.CategoryID.String(),
			CategoryName:    b.CategoryName,
			Month:           b.Month,
			Year:            b.Year,
			BudgetLimit:     toFloat(b.BudgetLimit),
			SpentAmount:     toFloat(b.SpentAmount),
			RemainingAmount: toFloat(b.RemainingAmount),
			PercentageUsed:  toFloat(b.PercentageUsed),
		}
	}

	return body
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
