package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// Processor runs balance-mutating actions. Satisfied by
// *operator.OperatorDelegator.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Auth        *AuthService
	Account     *AccountService
	Category    *CategoryService
	Transaction *TransactionService
	Budget      *BudgetService
	Admin       *AdminService
}

// NewService creates a new Service with the given storage, token manager and
// action processor.
func NewService(store *storage.Storage, tokens *auth.TokenManager, processor Processor) *Service {
	return &Service{
		Auth:        NewAuthService(store, tokens),
		Account:     NewAccountService(store),
		Category:    NewCategoryService(store),
		Transaction: NewTransactionService(store, processor),
		Budget:      NewBudgetService(store),
		Admin:       NewAdminService(store),
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
