package budget

import (
	"time"

	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// Budget is the API response model for a budget.
type Budget struct {
	ID           string `json:"id" doc:"Budget UUID"`
	CategoryID   string `json:"category_id" doc:"Category UUID"`
	MonthlyLimit string `json:"monthly_limit" doc:"Decimal monthly limit"`
	Month        int    `json:"month" doc:"Month 1-12"`
	Year         int    `json:"year" doc:"Year"`
	CreatedAt    string `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt    string `json:"updated_at" doc:"RFC3339 time of the last limit change"`
}

func newBudget(b *sqlconfig.Budget) Budget {
	return Budget{
		ID:           b.ID.String(),
		CategoryID:   b.CategoryID.String(),
		MonthlyLimit: b.MonthlyLimit.StringFixed(2),
		Month:        b.Month,
		Year:         b.Year,
		CreatedAt:    b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
