package operator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-insights/internal/events"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/memory"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event events.LedgerEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockPublisher) Close() error {
	return m.Called().Error(0)
}

func newTestDelegator(t *testing.T, publisher events.Publisher) (*OperatorDelegator, *storage.Storage) {
	t.Helper()
	store := storage.NewMemoryStorage(memory.NewStore())
	d := NewOperatorDelegator(store, 2, publisher, logging.SetupLogging("error"))
	d.Start()
	t.Cleanup(d.Stop)
	return d, store
}

func kindIs(kind events.Kind) interface{} {
	return mock.MatchedBy(func(e events.LedgerEvent) bool { return e.Kind == kind })
}

func TestProcess_CreateCategoryPublishes(t *testing.T) {
	publisher := new(mockPublisher)
	publisher.On("Publish", mock.Anything, kindIs(events.KindCategoryCreated)).Return(nil).Once()
	d, store := newTestDelegator(t, publisher)

	action := &actions.CreateCategory{Name: "  Groceries "}
	require.NoError(t, d.Process(context.Background(), action))

	category, err := store.Categories.FindByID(context.Background(), action.CreatedID)
	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, "Groceries", category.Name)
	publisher.AssertExpectations(t)
}

func TestProcess_InvalidInputWritesNothing(t *testing.T) {
	publisher := new(mockPublisher)
	d, store := newTestDelegator(t, publisher)

	err := d.Process(context.Background(), &actions.CreateCategory{Name: "   "})
	assert.ErrorIs(t, err, actions.ErrInvalidInput)

	categories, err := store.Categories.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestProcess_UnknownCategoryRollsBack(t *testing.T) {
	publisher := new(mockPublisher)
	d, store := newTestDelegator(t, publisher)

	missing := uuid.Must(uuid.NewV4())
	err := d.Process(context.Background(), &actions.CreateTransaction{
		Amount:     decimal.RequireFromString("10.00"),
		Type:       sqlconfig.TransactionTypeExpense,
		CategoryID: &missing,
	})
	assert.ErrorIs(t, err, sqlconfig.ErrCategoryNotFound)

	rows, err := store.Transactions.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestProcess_UpsertBudgetTwice(t *testing.T) {
	publisher := new(mockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
	d, store := newTestDelegator(t, publisher)
	ctx := context.Background()

	category := &actions.CreateCategory{Name: "Rent"}
	require.NoError(t, d.Process(ctx, category))

	first := &actions.UpsertBudget{CategoryID: category.CreatedID, MonthlyLimit: decimal.NewFromInt(900), Month: 5, Year: 2025}
	second := &actions.UpsertBudget{CategoryID: category.CreatedID, MonthlyLimit: decimal.NewFromInt(950), Month: 5, Year: 2025}
	require.NoError(t, d.Process(ctx, first))
	require.NoError(t, d.Process(ctx, second))

	assert.Equal(t, first.Result.ID, second.Result.ID)
	budgets, err := store.Budgets.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.True(t, budgets[0].MonthlyLimit.Equal(decimal.NewFromInt(950)))
	publisher.AssertNumberOfCalls(t, "Publish", 3)
}

func TestProcess_PublishFailureKeepsWrite(t *testing.T) {
	publisher := new(mockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))
	d, store := newTestDelegator(t, publisher)

	action := &actions.CreateTransaction{
		Amount: decimal.RequireFromString("3.50"),
		Type:   sqlconfig.TransactionTypeIncome,
	}
	require.NoError(t, d.Process(context.Background(), action))

	row, err := store.Transactions.FindByID(context.Background(), action.CreatedID)
	require.NoError(t, err)
	assert.NotNil(t, row)
}

func TestProcess_CanceledContext(t *testing.T) {
	d, _ := newTestDelegator(t, events.NopPublisher{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, &actions.CreateCategory{Name: "Late"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_AfterStop(t *testing.T) {
	d, _ := newTestDelegator(t, events.NopPublisher{})
	d.Stop()

	err := d.Process(context.Background(), &actions.CreateCategory{Name: "Late"})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestProcess_ConcurrentWriters(t *testing.T) {
	d, store := newTestDelegator(t, events.NopPublisher{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errs := make(chan error, 25)
	for i := 0; i < 25; i++ {
		go func() {
			errs <- d.Process(ctx, &actions.CreateTransaction{
				Amount: decimal.NewFromInt(1),
				Type:   sqlconfig.TransactionTypeExpense,
			})
		}()
	}
	for i := 0; i < 25; i++ {
		require.NoError(t, <-errs)
	}

	rows, err := store.Transactions.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 25)
}
