// Package memory is an in-process ledger store with the same contracts as
// the Postgres tables. It backs STORAGE_DRIVER=memory and unit tests.
package memory

import (
	"maps"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

type budgetKey struct {
	categoryID uuid.UUID
	month      int
	year       int
}

// Store holds all ledger records. Reads never block on an open Tx and may
// observe its uncommitted writes.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	now  func() time.Time

	categories   map[uuid.UUID]*sqlconfig.Category
	transactions map[uuid.UUID]*sqlconfig.Transaction
	budgets      map[budgetKey]*sqlconfig.Budget
}

// NewStore creates an empty store using the wall clock.
func NewStore() *Store {
	return NewStoreWithClock(func() time.Time { return time.Now().UTC() })
}

// NewStoreWithClock creates an empty store whose timestamps come from now.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		now:          now,
		categories:   make(map[uuid.UUID]*sqlconfig.Category),
		transactions: make(map[uuid.UUID]*sqlconfig.Transaction),
		budgets:      make(map[budgetKey]*sqlconfig.Budget),
	}
}

// Categories returns a category table view of the store.
func (s *Store) Categories() *CategoriesTable {
	return &CategoriesTable{store: s}
}

// Transactions returns a transaction table view of the store.
func (s *Store) Transactions() *TransactionsTable {
	return &TransactionsTable{store: s}
}

// Budgets returns a budget table view of the store.
func (s *Store) Budgets() *BudgetsTable {
	return &BudgetsTable{store: s}
}

// Tx serializes writers. Rollback restores the records as they were at Begin.
type Tx struct {
	store        *Store
	categories   map[uuid.UUID]*sqlconfig.Category
	transactions map[uuid.UUID]*sqlconfig.Transaction
	budgets      map[budgetKey]*sqlconfig.Budget
	done         bool
}

// Begin blocks until no other Tx is open.
func (s *Store) Begin() *Tx {
	s.txMu.Lock()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return &Tx{
		store:        s,
		categories:   maps.Clone(s.categories),
		transactions: maps.Clone(s.transactions),
		budgets:      maps.Clone(s.budgets),
	}
}

func (tx *Tx) Commit() error {
	if tx.done {
		return nil
	}
	tx.done = true
	tx.store.txMu.Unlock()
	return nil
}

func (tx *Tx) Rollback() error {
	if tx.done {
		return nil
	}
	tx.done = true

	tx.store.mu.Lock()
	tx.store.categories = tx.categories
	tx.store.transactions = tx.transactions
	tx.store.budgets = tx.budgets
	tx.store.mu.Unlock()

	tx.store.txMu.Unlock()
	return nil
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}
