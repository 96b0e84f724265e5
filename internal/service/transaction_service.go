package service

import (
	"context"
	"time"

	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

const defaultLimit = 20

// TransactionService handles transaction reads.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns a page of transactions using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, listFilter TransactionListFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	if listFilter.StartDate != nil && listFilter.EndDate != nil && listFilter.StartDate.After(*listFilter.EndDate) {
		return nil, nil, invalidQuery("start date after end date")
	}

	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	filter := &sqlconfig.TransactionFilter{
		Type:       listFilter.Type,
		CategoryID: listFilter.CategoryID,
		Range: sqlconfig.DateRange{
			Start: listFilter.StartDate,
			End:   listFilter.EndDate,
		},
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, unavailable(err)
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = Transaction{
			ID:              row.ID,
			Amount:          row.Amount,
			Description:     row.Description,
			Type:            row.Type,
			TransactionDate: row.TransactionDate,
			CreatedAt:       row.CreatedAt,
		}
		if row.CategoryID.Valid {
			id := row.CategoryID.UUID
			convertedTransactions[i].CategoryID = &id
		}
	}

	return convertedTransactions, nextCursor, nil
}
