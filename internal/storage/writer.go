package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-insights/internal/storage/memory"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// Writer exposes the ledger tables inside one transaction.
type Writer struct {
	Categories   sqlconfig.ICategoryTable
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable

	commit   func(ctx context.Context) error
	rollback func(ctx context.Context) error
}

// NewWriter builds a Writer from explicit tables, for callers that manage
// their own transaction.
func NewWriter(
	categories sqlconfig.ICategoryTable,
	transactions sqlconfig.ITransactionTable,
	budgets sqlconfig.IBudgetTable,
	commit, rollback func(ctx context.Context) error,
) *Writer {
	return &Writer{
		Categories:   categories,
		Transactions: transactions,
		Budgets:      budgets,
		commit:       commit,
		rollback:     rollback,
	}
}

func newSQLWriter(tx bob.Tx) *Writer {
	return NewWriter(
		sqlconfig.NewCategoriesTable(tx),
		sqlconfig.NewTransactionsTable(tx),
		sqlconfig.NewBudgetsTable(tx),
		tx.Commit,
		tx.Rollback,
	)
}

func newMemoryWriter(store *memory.Store, tx *memory.Tx) *Writer {
	return NewWriter(
		store.Categories(),
		store.Transactions(),
		store.Budgets(),
		func(context.Context) error { return tx.Commit() },
		func(context.Context) error { return tx.Rollback() },
	)
}

func (w *Writer) Commit(ctx context.Context) error {
	if w.commit == nil {
		return nil
	}
	return w.commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	if w.rollback == nil {
		return nil
	}
	return w.rollback(ctx)
}
