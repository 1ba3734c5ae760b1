package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CategoryAmount is one bucket of the summary report. Uncategorized
// transactions appear under id 0.
type CategoryAmount struct {
	ID     int64
	Name   string
	Color  string
	Amount decimal.Decimal
}

// Summary is the income/expense breakdown for a date range. Transfers are
// excluded from every figure.
type Summary struct {
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	Balance           decimal.Decimal
	IncomeCategories  []CategoryAmount
	ExpenseCategories []CategoryAmount
}

// TransactionService handles transaction business logic. Mutations go
// through the action processor so the account balance and the transaction
// row always change together.
type TransactionService struct {
	storage   *storage.Storage
	processor Processor
}

func NewTransactionService(store *storage.Storage, processor Processor) *TransactionService {
	return &TransactionService{storage: store, processor: processor}
}

func validTransactionType(t string) bool {
	switch t {
	case sqlconfig.TransactionTypeIncome, sqlconfig.TransactionTypeExpense, sqlconfig.TransactionTypeTransfer:
		return true
	}
	return false
}

func mapActionError(err error) error {
	switch {
	case errors.Is(err, actions.ErrAccountNotFound):
		return &NotFoundError{Resource: "Account"}
	case errors.Is(err, actions.ErrCategoryNotFound):
		return &NotFoundError{Resource: "Category"}
	case errors.Is(err, actions.ErrTransactionNotFound):
		return &NotFoundError{Resource: "Transaction"}
	case errors.Is(err, actions.ErrCategoryTypeMismatch):
		return &ValidationError{Message: "Category type does not match transaction type"}
	}
	return err
}

// CreateTransaction records a transaction and applies its signed effect to
// the account balance.
func (s *TransactionService) CreateTransaction(ctx context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	if !validTransactionType(create.Type) {
		return nil, &ValidationError{Message: `Type must be "income", "expense", or "transfer"`}
	}
	if !create.Amount.IsPositive() {
		return nil, &ValidationError{Message: "Amount must be positive"}
	}

	action := &actions.CreateTransaction{
		UserID:      create.UserID,
		AccountID:   create.AccountID,
		CategoryID:  create.CategoryID,
		Amount:      create.Amount,
		Type:        create.Type,
		Description: create.Description,
		Date:        create.Date,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, mapActionError(err)
	}
	return action.Result, nil
}

// UpdateTransaction applies a partial update, reversing the old balance
// effect before applying the new one.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, id int64, setter *sqlconfig.TransactionSetter) (*sqlconfig.Transaction, error) {
	if setter.Type.IsValue() && !validTransactionType(setter.Type.MustGet()) {
		return nil, &ValidationError{Message: `Type must be "income", "expense", or "transfer"`}
	}
	if setter.Amount.IsValue() && !setter.Amount.MustGet().IsPositive() {
		return nil, &ValidationError{Message: "Amount must be positive"}
	}

	action := &actions.UpdateTransaction{
		UserID:        userID,
		TransactionID: id,
		Amount:        setter.Amount,
		Type:          setter.Type,
		Description:   setter.Description,
		Date:          setter.Date,
		CategoryID:    setter.CategoryID,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, mapActionError(err)
	}
	return action.Result, nil
}

// DeleteTransaction removes a transaction and reverses its balance effect.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id int64) error {
	action := &actions.DeleteTransaction{
		UserID:        userID,
		TransactionID: id,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return mapActionError(err)
	}
	return nil
}

// GetTransaction retrieves one of the user's transactions.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id int64) (*sqlconfig.Transaction, error) {
	transaction, err := s.storage.Transactions.FindByID(ctx, userID, id)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "Transaction"}
		}
		return nil, err
	}
	return transaction, nil
}

// ListTransactions returns the user's transactions matching the filter,
// newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID int64, filter *sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, error) {
	return s.storage.Transactions.List(ctx, userID, filter)
}

// Summarize builds the income/expense breakdown for an optional inclusive
// date range.
func (s *TransactionService) Summarize(ctx context.Context, userID int64, start, end *time.Time) (*Summary, error) {
	sums, err := s.storage.Transactions.SumByCategory(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		IncomeCategories:  []CategoryAmount{},
		ExpenseCategories: []CategoryAmount{},
	}
	for _, row := range sums {
		bucket := CategoryAmount{
			ID:     row.CategoryID,
			Name:   row.Name,
			Color:  row.Color,
			Amount: row.Amount,
		}
		switch row.Type {
		case sqlconfig.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(row.Amount)
			summary.IncomeCategories = append(summary.IncomeCategories, bucket)
		case sqlconfig.TransactionTypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(row.Amount)
			summary.ExpenseCategories = append(summary.ExpenseCategories, bucket)
		}
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}
