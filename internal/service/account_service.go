package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// AccountService handles account business logic.
type AccountService struct {
	storage *storage.Storage
}

func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// CreateAccount creates a new account for the user.
func (s *AccountService) CreateAccount(ctx context.Context, create *sqlconfig.AccountCreate) (*sqlconfig.Account, error) {
	if create.Name == "" {
		return nil, &ValidationError{Message: "Missing required field: name"}
	}
	return s.storage.Accounts.Insert(ctx, create)
}

// GetAccount retrieves one of the user's accounts.
func (s *AccountService) GetAccount(ctx context.Context, userID, id int64) (*sqlconfig.Account, error) {
	account, err := s.storage.Accounts.FindByID(ctx, userID, id, false)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "Account"}
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts returns the user's accounts, optionally restricted to active
// or inactive ones.
func (s *AccountService) ListAccounts(ctx context.Context, userID int64, filter *sqlconfig.AccountFilter) ([]*sqlconfig.Account, error) {
	return s.storage.Accounts.List(ctx, userID, filter)
}

// UpdateAccount applies a partial update to one of the user's accounts.
func (s *AccountService) UpdateAccount(ctx context.Context, userID, id int64, setter *sqlconfig.AccountSetter) (*sqlconfig.Account, error) {
	account, err := s.storage.Accounts.Update(ctx, userID, id, setter)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "Account"}
		}
		return nil, err
	}
	return account, nil
}

// DeleteAccount removes one of the user's accounts together with its
// transactions.
func (s *AccountService) DeleteAccount(ctx context.Context, userID, id int64) error {
	err := s.storage.Accounts.Delete(ctx, userID, id)
	if isNoRows(err) {
		return &NotFoundError{Resource: "Account"}
	}
	return err
}
