package actions

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

func testAccount(balance string) *sqlconfig.Account {
	return &sqlconfig.Account{
		ID:       7,
		UserID:   1,
		Name:     "Main",
		Balance:  decimal.RequireFromString(balance),
		Currency: "UAH",
		IsActive: true,
	}
}

func TestCreateTransaction_IncomeRaisesBalance(t *testing.T) {
	writer, accounts, transactions, _ := newTestWriter()

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	stored := &sqlconfig.Transaction{ID: 42, UserID: 1, AccountID: 7, Type: "income"}

	accounts.On("FindByID", mock.Anything, int64(1), int64(7), true).
		Return(testAccount("1000.00"), nil)
	transactions.On("Insert", mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.UserID == 1 && c.AccountID == 7 && c.Type == "income" &&
			c.Amount.Equal(decimal.RequireFromString("200.00")) && c.Date.Equal(date)
	})).Return(stored, nil)
	accounts.On("UpdateBalance", mock.Anything, int64(7), balanceEquals("1200.00")).
		Return(nil)

	action := &CreateTransaction{
		UserID:    1,
		AccountID: 7,
		Amount:    decimal.RequireFromString("200.00"),
		Type:      "income",
		Date:      date,
	}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, stored, action.Result)
	accounts.AssertExpectations(t)
	transactions.AssertExpectations(t)
}

func TestCreateTransaction_ExpenseLowersBalance(t *testing.T) {
	writer, accounts, transactions, _ := newTestWriter()

	accounts.On("FindByID", mock.Anything, int64(1), int64(7), true).
		Return(testAccount("1000.00"), nil)
	transactions.On("Insert", mock.Anything, mock.Anything).
		Return(&sqlconfig.Transaction{ID: 43}, nil)
	accounts.On("UpdateBalance", mock.Anything, int64(7), balanceEquals("700.00")).
		Return(nil)

	action := &CreateTransaction{
		UserID:    1,
		AccountID: 7,
		Amount:    decimal.RequireFromString("300.00"),
		Type:      "expense",
	}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	accounts.AssertExpectations(t)
}

func TestCreateTransaction_TransferKeepsBalance(t *testing.T) {
	writer, accounts, transactions, _ := newTestWriter()

	accounts.On("FindByID", mock.Anything, int64(1), int64(7), true).
		Return(testAccount("1000.00"), nil)
	transactions.On("Insert", mock.Anything, mock.Anything).
		Return(&sqlconfig.Transaction{ID: 44}, nil)
	accounts.On("UpdateBalance", mock.Anything, int64(7), balanceEquals("1000.00")).
		Return(nil)

	action := &CreateTransaction{
		UserID:    1,
		AccountID: 7,
		Amount:    decimal.RequireFromString("50.00"),
		Type:      "transfer",
	}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	accounts.AssertExpectations(t)
}

func TestCreateTransaction_AccountMissing(t *testing.T) {
	writer, accounts, _, _ := newTestWriter()

	accounts.On("FindByID", mock.Anything, int64(1), int64(99), true).
		Return(nil, sql.ErrNoRows)

	action := &CreateTransaction{
		UserID:    1,
		AccountID: 99,
		Amount:    decimal.RequireFromString("10.00"),
		Type:      "income",
	}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, action.Result)
}

func TestCreateTransaction_CategoryTypeMismatch(t *testing.T) {
	writer, accounts, _, categories := newTestWriter()

	categoryID := int64(3)
	accounts.On("FindByID", mock.Anything, int64(1), int64(7), true).
		Return(testAccount("1000.00"), nil)
	categories.On("FindByID", mock.Anything, int64(1), categoryID).
		Return(&sqlconfig.Category{ID: categoryID, Type: "expense"}, nil)

	action := &CreateTransaction{
		UserID:     1,
		AccountID:  7,
		CategoryID: &categoryID,
		Amount:     decimal.RequireFromString("10.00"),
		Type:       "income",
	}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrCategoryTypeMismatch)
}

func TestCreateTransaction_CategoryMissing(t *testing.T) {
	writer, accounts, _, categories := newTestWriter()

	categoryID := int64(999)
	accounts.On("FindByID", mock.Anything, int64(1), int64(7), true).
		Return(testAccount("1000.00"), nil)
	categories.On("FindByID", mock.Anything, int64(1), categoryID).
		Return(nil, sql.ErrNoRows)

	action := &CreateTransaction{
		UserID:     1,
		AccountID:  7,
		CategoryID: &categoryID,
		Amount:     decimal.RequireFromString("10.00"),
		Type:       "expense",
	}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
