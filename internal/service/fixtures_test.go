package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/memory"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// ledgerFixture seeds an in-memory ledger for aggregation tests.
type ledgerFixture struct {
	t     *testing.T
	store *memory.Store
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	return &ledgerFixture{t: t, store: memory.NewStore()}
}

func (f *ledgerFixture) storage() *storage.Storage {
	return storage.NewMemoryStorage(f.store)
}

func (f *ledgerFixture) category(name string) uuid.UUID {
	f.t.Helper()
	id, err := f.store.Categories().Insert(context.Background(), &sqlconfig.CategoryCreate{Name: name})
	require.NoError(f.t, err)
	return id
}

func (f *ledgerFixture) transaction(txType sqlconfig.TransactionType, categoryID uuid.NullUUID, amount string, date time.Time) {
	f.t.Helper()
	_, err := f.store.Transactions().Insert(context.Background(), &sqlconfig.TransactionCreate{
		Amount:          decimal.RequireFromString(amount),
		Type:            txType,
		CategoryID:      categoryID,
		TransactionDate: date,
	})
	require.NoError(f.t, err)
}

func (f *ledgerFixture) expense(categoryID uuid.UUID, amount string, date time.Time) {
	f.t.Helper()
	f.transaction(sqlconfig.TransactionTypeExpense, uuid.NullUUID{UUID: categoryID, Valid: true}, amount, date)
}

func (f *ledgerFixture) uncategorizedExpense(amount string, date time.Time) {
	f.t.Helper()
	f.transaction(sqlconfig.TransactionTypeExpense, uuid.NullUUID{}, amount, date)
}

func (f *ledgerFixture) income(amount string, date time.Time) {
	f.t.Helper()
	f.transaction(sqlconfig.TransactionTypeIncome, uuid.NullUUID{}, amount, date)
}

func (f *ledgerFixture) budget(categoryID uuid.UUID, limit string, month, year int) {
	f.t.Helper()
	_, err := f.store.Budgets().Upsert(context.Background(), &sqlconfig.BudgetUpsert{
		CategoryID:   categoryID,
		MonthlyLimit: decimal.RequireFromString(limit),
		Month:        month,
		Year:         year,
	})
	require.NoError(f.t, err)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
