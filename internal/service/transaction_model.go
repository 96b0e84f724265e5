package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID              uuid.UUID
	Amount          decimal.Decimal
	Description     string
	Type            sqlconfig.TransactionType
	CategoryID      *uuid.UUID
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionListFilter narrows a transaction listing. Callers paging through
// results must send the same filter with every cursor.
type TransactionListFilter struct {
	Type       *sqlconfig.TransactionType
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}
