package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

func newTransactionTestService() (*TransactionService, *mockTransactionTable, *mockProcessor) {
	transactions := &mockTransactionTable{}
	processor := &mockProcessor{}
	store := &storage.Storage{Transactions: transactions}
	return NewTransactionService(store, processor), transactions, processor
}

func TestCreateTransaction_InvalidType(t *testing.T) {
	svc, _, processor := newTransactionTestService()

	_, err := svc.CreateTransaction(context.Background(), &sqlconfig.TransactionCreate{
		UserID:    1,
		AccountID: 7,
		Amount:    decimal.RequireFromString("10.00"),
		Type:      "loan",
	})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, `Type must be "income", "expense", or "transfer"`, validationErr.Message)
	processor.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestCreateTransaction_NonPositiveAmount(t *testing.T) {
	svc, _, processor := newTransactionTestService()

	_, err := svc.CreateTransaction(context.Background(), &sqlconfig.TransactionCreate{
		UserID:    1,
		AccountID: 7,
		Amount:    decimal.Zero,
		Type:      "income",
	})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Amount must be positive", validationErr.Message)
	processor.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestCreateTransaction_ReturnsActionResult(t *testing.T) {
	svc, _, processor := newTransactionTestService()

	stored := &sqlconfig.Transaction{ID: 42, UserID: 1, AccountID: 7}
	processor.On("Process", mock.Anything, mock.AnythingOfType("*actions.CreateTransaction")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*actions.CreateTransaction).Result = stored
		}).Return(nil)

	transaction, err := svc.CreateTransaction(context.Background(), &sqlconfig.TransactionCreate{
		UserID:    1,
		AccountID: 7,
		Amount:    decimal.RequireFromString("10.00"),
		Type:      "income",
	})

	assert.NoError(t, err)
	assert.Equal(t, stored, transaction)
}

func TestCreateTransaction_MapsActionErrors(t *testing.T) {
	svc, _, processor := newTransactionTestService()

	processor.On("Process", mock.Anything, mock.Anything).Return(actions.ErrAccountNotFound)

	_, err := svc.CreateTransaction(context.Background(), &sqlconfig.TransactionCreate{
		UserID:    1,
		AccountID: 99,
		Amount:    decimal.RequireFromString("10.00"),
		Type:      "income",
	})

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Account", notFound.Resource)
}

func TestUpdateTransaction_MapsMismatch(t *testing.T) {
	svc, _, processor := newTransactionTestService()

	processor.On("Process", mock.Anything, mock.Anything).Return(actions.ErrCategoryTypeMismatch)

	_, err := svc.UpdateTransaction(context.Background(), 1, 42, &sqlconfig.TransactionSetter{})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Category type does not match transaction type", validationErr.Message)
}

func TestSummarize_GroupsByTypeAndCategory(t *testing.T) {
	svc, transactions, _ := newTransactionTestService()

	transactions.On("SumByCategory", mock.Anything, int64(1), (*time.Time)(nil), (*time.Time)(nil)).
		Return([]*sqlconfig.CategorySum{
			{Type: "income", CategoryID: 1, Name: "Salary", Color: "#10B981", Amount: decimal.RequireFromString("3000.00")},
			{Type: "expense", CategoryID: 4, Name: "Groceries", Color: "#EF4444", Amount: decimal.RequireFromString("450.00")},
			{Type: "expense", CategoryID: 0, Name: "Uncategorized", Color: "#808080", Amount: decimal.RequireFromString("50.00")},
		}, nil)

	summary, err := svc.Summarize(context.Background(), 1, nil, nil)

	assert.NoError(t, err)
	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("3000.00")))
	assert.True(t, summary.TotalExpense.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("2500.00")))
	assert.Len(t, summary.IncomeCategories, 1)
	assert.Len(t, summary.ExpenseCategories, 2)
	assert.Equal(t, int64(0), summary.ExpenseCategories[1].ID)
	assert.Equal(t, "Uncategorized", summary.ExpenseCategories[1].Name)
}

func TestSummarize_EmptyRangeHasEmptySlices(t *testing.T) {
	svc, transactions, _ := newTransactionTestService()

	transactions.On("SumByCategory", mock.Anything, int64(1), (*time.Time)(nil), (*time.Time)(nil)).
		Return([]*sqlconfig.CategorySum{}, nil)

	summary, err := svc.Summarize(context.Background(), 1, nil, nil)

	assert.NoError(t, err)
	assert.NotNil(t, summary.IncomeCategories)
	assert.NotNil(t, summary.ExpenseCategories)
	assert.Empty(t, summary.IncomeCategories)
	assert.Empty(t, summary.ExpenseCategories)
	assert.True(t, summary.Balance.IsZero())
}
