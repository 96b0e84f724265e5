package memory

import (
	"bytes"
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

var (
	_ sqlconfig.ICategoryTable    = (*CategoriesTable)(nil)
	_ sqlconfig.ITransactionTable = (*TransactionsTable)(nil)
	_ sqlconfig.IBudgetTable      = (*BudgetsTable)(nil)
)

type CategoriesTable struct {
	store *Store
}

func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	row, ok := t.store.categories[id]
	if !ok {
		return nil, nil
	}
	c := *row
	return &c, nil
}

func (t *CategoriesTable) Insert(ctx context.Context, create *sqlconfig.CategoryCreate) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	now := t.store.now()
	row := &sqlconfig.Category{
		ID:        newID(),
		Name:      create.Name,
		Color:     create.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	t.store.categories[row.ID] = row
	return row.ID, nil
}

func (t *CategoriesTable) List(ctx context.Context) ([]*sqlconfig.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	result := make([]*sqlconfig.Category, 0, len(t.store.categories))
	for _, row := range t.store.categories {
		c := *row
		result = append(result, &c)
	}
	slices.SortFunc(result, func(a, b *sqlconfig.Category) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), bytes.Compare(a.ID.Bytes(), b.ID.Bytes()))
	})
	return result, nil
}

type TransactionsTable struct {
	store *Store
}

func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	row, ok := t.store.transactions[id]
	if !ok {
		return nil, nil
	}
	tx := *row
	return &tx, nil
}

func (t *TransactionsTable) Insert(ctx context.Context, create *sqlconfig.TransactionCreate) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	now := t.store.now()
	transactionDate := create.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = now
	}
	// Postgres timestamps hold microseconds; month ranges end on the last one.
	transactionDate = transactionDate.Round(time.Microsecond)
	row := &sqlconfig.Transaction{
		ID:              newID(),
		Amount:          create.Amount,
		Description:     create.Description,
		Type:            create.Type,
		CategoryID:      create.CategoryID,
		TransactionDate: transactionDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	t.store.transactions[row.ID] = row
	return row.ID, nil
}

// List mirrors the SQL table: newest first, and Limit+1 rows so callers can
// detect a further page.
func (t *TransactionsTable) List(ctx context.Context, filter *sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.store.mu.RLock()
	var result []*sqlconfig.Transaction
	for _, row := range t.store.transactions {
		if filter.Matches(row) {
			tx := *row
			result = append(result, &tx)
		}
	}
	t.store.mu.RUnlock()

	slices.SortFunc(result, func(a, b *sqlconfig.Transaction) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), bytes.Compare(b.ID.Bytes(), a.ID.Bytes()))
	})

	if filter != nil {
		if filter.Offset > 0 {
			result = result[min(filter.Offset, len(result)):]
		}
		if filter.Limit > 0 && len(result) > filter.Limit+1 {
			result = result[:filter.Limit+1]
		}
	}
	return result, nil
}

type BudgetsTable struct {
	store *Store
}

// Upsert holds the store lock across lookup and write, so it is atomic.
func (t *BudgetsTable) Upsert(ctx context.Context, upsert *sqlconfig.BudgetUpsert) (*sqlconfig.Budget, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	key := budgetKey{categoryID: upsert.CategoryID, month: upsert.Month, year: upsert.Year}
	now := t.store.now()

	row := &sqlconfig.Budget{
		ID:           newID(),
		CategoryID:   upsert.CategoryID,
		MonthlyLimit: upsert.MonthlyLimit,
		Month:        upsert.Month,
		Year:         upsert.Year,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if existing, ok := t.store.budgets[key]; ok {
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	}
	t.store.budgets[key] = row

	b := *row
	return &b, nil
}

func (t *BudgetsTable) List(ctx context.Context, filter *sqlconfig.BudgetFilter) ([]*sqlconfig.Budget, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.store.mu.RLock()
	var result []*sqlconfig.Budget
	for _, row := range t.store.budgets {
		if filter.Matches(row) {
			b := *row
			result = append(result, &b)
		}
	}
	t.store.mu.RUnlock()

	slices.SortFunc(result, func(a, b *sqlconfig.Budget) int {
		return cmp.Or(
			cmp.Compare(a.Year, b.Year),
			cmp.Compare(a.Month, b.Month),
			bytes.Compare(a.CategoryID.Bytes(), b.CategoryID.Bytes()),
		)
	})
	return result, nil
}
