package service

import (
	"time"

	"github.com/carson-networks/budget-insights/internal/storage"
)

// Service holds all read-side business logic services.
type Service struct {
	Dashboard   *DashboardService
	Transaction *TransactionService
	Category    *CategoryService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, dashboardTimeout time.Duration) *Service {
	return &Service{
		Dashboard:   NewDashboardService(store, dashboardTimeout),
		Transaction: NewTransactionService(store),
		Category:    NewCategoryService(store),
	}
}
