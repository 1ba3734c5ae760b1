package actions

import (
	"context"
	"database/sql"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

func existingIncome(amount string) *sqlconfig.Transaction {
	return &sqlconfig.Transaction{
		ID:        42,
		UserID:    1,
		AccountID: 7,
		Amount:    decimal.RequireFromString(amount),
		Type:      "income",
	}
}

func TestUpdateTransaction_AmountChangeNoDoubleCount(t *testing.T) {
	writer, accounts, transactions, _ := newTestWriter()

	// Balance already contains the original 200 income; raising the amount
	// to 500 must land at 1500, not 1700.
	transactions.On("FindByIDForUpdate", mock.Anything, int64(1), int64(42)).
		Return(existingIncome("200.00"), nil)
	accounts.On("FindByID", mock.Anything, int64(1), int64(7), true).
		Return(testAccount("1200.00"), nil)
	transactions.On("Update", mock.Anything, int64(42), mock.Anything).
		Return(nil)
	accounts.On("UpdateBalance", mock.Anything, int64(7), balanceEquals("1500.00")).
		Return(nil)
	updated := existingIncome("500.00")
	transactions.On("FindByID", mock.Anything, int64(1), int64(42)).
		Return(updated, nil)

	action := &UpdateTransaction{
		UserID:        1,
		TransactionID: 42,
		Amount:        omit.From(decimal.RequireFromString("500.00")),
	}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, updated, action.Result)
	accounts.AssertExpectations(t)
	transactions.AssertExpectations(t)
}

func TestUpdateTransaction_TypeFlipReversesEffect(t *testing.T) {
	writer, accounts, transactions, _ := newTestWriter()

	transactions.On("FindByIDForUpdate", mock.Anything, int64(1), int64(42)).
		Return(existingIncome("200.00"), nil)
	accounts.On("FindByID", mock.Anything, int64(1), int64(7), true).
		Return(testAccount("1200.00"), nil)
	transactions.On("Update", mock.Anything, int64(42), mock.Anything).
		Return(nil)
	accounts.On("UpdateBalance", mock.Anything, int64(7), balanceEquals("800.00")).
		Return(nil)
	transactions.On("FindByID", mock.Anything, int64(1), int64(42)).
		Return(existingIncome("200.00"), nil)

	action := &UpdateTransaction{
		UserID:        1,
		TransactionID: 42,
		Type:          omit.From("expense"),
	}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	accounts.AssertExpectations(t)
}

func TestUpdateTransaction_ClearCategorySkipsCheck(t *testing.T) {
	writer, accounts, transactions, categories := newTestWriter()

	existing := existingIncome("200.00")
	oldCategory := int64(3)
	existing.CategoryID = &oldCategory

	transactions.On("FindByIDForUpdate", mock.Anything, int64(1), int64(42)).
		Return(existing, nil)
	accounts.On("FindByID", mock.Anything, int64(1), int64(7), true).
		Return(testAccount("1200.00"), nil)
	transactions.On("Update", mock.Anything, int64(42), mock.MatchedBy(func(s *sqlconfig.TransactionSetter) bool {
		return s.CategoryID.IsNull()
	})).Return(nil)
	accounts.On("UpdateBalance", mock.Anything, int64(7), balanceEquals("1200.00")).
		Return(nil)
	transactions.On("FindByID", mock.Anything, int64(1), int64(42)).
		Return(existing, nil)

	action := &UpdateTransaction{
		UserID:        1,
		TransactionID: 42,
		CategoryID:    omitnull.FromPtr[int64](nil),
	}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	categories.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTransaction_NewCategoryChecked(t *testing.T) {
	writer, accounts, transactions, categories := newTestWriter()

	transactions.On("FindByIDForUpdate", mock.Anything, int64(1), int64(42)).
		Return(existingIncome("200.00"), nil)
	accounts.On("FindByID", mock.Anything, int64(1), int64(7), true).
		Return(testAccount("1200.00"), nil)
	categories.On("FindByID", mock.Anything, int64(1), int64(5)).
		Return(&sqlconfig.Category{ID: 5, Type: "expense"}, nil)

	action := &UpdateTransaction{
		UserID:        1,
		TransactionID: 42,
		CategoryID:    omitnull.From(int64(5)),
	}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrCategoryTypeMismatch)
}

func TestUpdateTransaction_Missing(t *testing.T) {
	writer, _, transactions, _ := newTestWriter()

	transactions.On("FindByIDForUpdate", mock.Anything, int64(1), int64(99)).
		Return(nil, sql.ErrNoRows)

	action := &UpdateTransaction{UserID: 1, TransactionID: 99}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrTransactionNotFound)
}
