package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-insights/internal/config"
	"github.com/carson-networks/budget-insights/internal/storage/memory"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// Storage is the ledger store. Readers use the table fields directly; writers
// go through Write so a set of changes commits or rolls back together.
type Storage struct {
	DB           *sql.DB
	Categories   sqlconfig.ICategoryTable
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable

	begin func(ctx context.Context) (*Writer, error)
}

// NewStorage opens the store selected by env.StorageDriver.
func NewStorage(env *config.Config) (*Storage, error) {
	switch env.StorageDriver {
	case config.StorageDriverMemory:
		return NewMemoryStorage(memory.NewStore()), nil
	case config.StorageDriverPostgres:
		db, err := sql.Open("postgres", env.PostgresURL())
		if err != nil {
			return nil, fmt.Errorf("sql.Open: %w", err)
		}
		return NewPostgresStorage(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", env.StorageDriver)
	}
}

// NewPostgresStorage binds the bob tables to db.
func NewPostgresStorage(db *sql.DB) *Storage {
	exec := bob.NewDB(db)
	return &Storage{
		DB:           db,
		Categories:   sqlconfig.NewCategoriesTable(exec),
		Transactions: sqlconfig.NewTransactionsTable(exec),
		Budgets:      sqlconfig.NewBudgetsTable(exec),
		begin: func(ctx context.Context) (*Writer, error) {
			tx, err := exec.BeginTx(ctx, nil)
			if err != nil {
				return nil, err
			}
			return newSQLWriter(tx), nil
		},
	}
}

// NewMemoryStorage serves the ledger from an in-process store.
func NewMemoryStorage(store *memory.Store) *Storage {
	return &Storage{
		Categories:   store.Categories(),
		Transactions: store.Transactions(),
		Budgets:      store.Budgets(),
		begin: func(ctx context.Context) (*Writer, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return newMemoryWriter(store, store.Begin()), nil
		},
	}
}

// Write opens a transaction. The caller must Commit or Rollback the Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if s.begin == nil {
		return nil, fmt.Errorf("storage: writes not configured")
	}
	return s.begin(ctx)
}

// Ping checks the database connection. The memory store is always reachable.
func (s *Storage) Ping(ctx context.Context) error {
	if s.DB == nil {
		return nil
	}
	return s.DB.PingContext(ctx)
}

// Close releases the database handle, if any.
func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
