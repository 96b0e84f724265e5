package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a transaction record.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	Type            TransactionType `db:"type"`
	CategoryID      uuid.NullUUID   `db:"category_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Amount          decimal.Decimal
	Description     string
	Type            TransactionType
	CategoryID      uuid.NullUUID
	TransactionDate time.Time // defaults to now if zero
}

// TransactionFilter specifies filters for listing transactions. Every field
// is optional; the set fields are combined with AND.
type TransactionFilter struct {
	Type            *TransactionType
	CategoryID      *uuid.UUID
	Range           DateRange
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// Matches evaluates the filter predicates against a single row. Limit and
// Offset are not predicates and are ignored.
func (f *TransactionFilter) Matches(tx *Transaction) bool {
	if f == nil {
		return true
	}
	if f.Type != nil && tx.Type != *f.Type {
		return false
	}
	if f.CategoryID != nil && (!tx.CategoryID.Valid || tx.CategoryID.UUID != *f.CategoryID) {
		return false
	}
	if !f.Range.Contains(tx.TransactionDate) {
		return false
	}
	if f.MaxCreationTime != nil && tx.CreatedAt.After(*f.MaxCreationTime) {
		return false
	}
	return true
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}
