package transaction

import (
	"time"

	"github.com/carson-networks/budget-insights/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string  `json:"id" doc:"Transaction UUID"`
	Amount          string  `json:"amount" doc:"Decimal amount"`
	Description     string  `json:"description" doc:"Free-text description"`
	Type            string  `json:"type" doc:"income or expense"`
	CategoryID      *string `json:"category_id" doc:"Category UUID, null when uncategorized"`
	TransactionDate string  `json:"transaction_date" doc:"RFC3339 transaction date"`
	CreatedAt       string  `json:"created_at" doc:"RFC3339 creation time"`
}

func newTransaction(tx service.Transaction) Transaction {
	out := Transaction{
		ID:              tx.ID.String(),
		Amount:          tx.Amount.StringFixed(2),
		Description:     tx.Description,
		Type:            string(tx.Type),
		TransactionDate: tx.TransactionDate.UTC().Format(time.RFC3339),
		CreatedAt:       tx.CreatedAt.UTC().Format(time.RFC3339),
	}
	if tx.CategoryID != nil {
		id := tx.CategoryID.String()
		out.CategoryID = &id
	}
	return out
}
