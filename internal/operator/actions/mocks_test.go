package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type mockAccountTable struct {
	mock.Mock
}

func (m *mockAccountTable) FindByID(ctx context.Context, userID, id int64, forUpdate bool) (*sqlconfig.Account, error) {
	args := m.Called(ctx, userID, id, forUpdate)
	if account := args.Get(0); account != nil {
		return account.(*sqlconfig.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountTable) Insert(ctx context.Context, create *sqlconfig.AccountCreate) (*sqlconfig.Account, error) {
	args := m.Called(ctx, create)
	if account := args.Get(0); account != nil {
		return account.(*sqlconfig.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountTable) List(ctx context.Context, userID int64, filter *sqlconfig.AccountFilter) ([]*sqlconfig.Account, error) {
	args := m.Called(ctx, userID, filter)
	if accounts := args.Get(0); accounts != nil {
		return accounts.([]*sqlconfig.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountTable) Update(ctx context.Context, userID, id int64, setter *sqlconfig.AccountSetter) (*sqlconfig.Account, error) {
	args := m.Called(ctx, userID, id, setter)
	if account := args.Get(0); account != nil {
		return account.(*sqlconfig.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountTable) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	args := m.Called(ctx, id, balance)
	return args.Error(0)
}

func (m *mockAccountTable) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) FindByID(ctx context.Context, userID, id int64) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID, id)
	if transaction := args.Get(0); transaction != nil {
		return transaction.(*sqlconfig.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionTable) FindByIDForUpdate(ctx context.Context, userID, id int64) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID, id)
	if transaction := args.Get(0); transaction != nil {
		return transaction.(*sqlconfig.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionTable) Insert(ctx context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, create)
	if transaction := args.Get(0); transaction != nil {
		return transaction.(*sqlconfig.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionTable) Update(ctx context.Context, id int64, setter *sqlconfig.TransactionSetter) error {
	args := m.Called(ctx, id, setter)
	return args.Error(0)
}

func (m *mockTransactionTable) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTransactionTable) List(ctx context.Context, userID int64, filter *sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if transactions := args.Get(0); transactions != nil {
		return transactions.([]*sqlconfig.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionTable) SumExpenses(ctx context.Context, userID, categoryID int64, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, categoryID, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockTransactionTable) SumByCategory(ctx context.Context, userID int64, start, end *time.Time) ([]*sqlconfig.CategorySum, error) {
	args := m.Called(ctx, userID, start, end)
	if sums := args.Get(0); sums != nil {
		return sums.([]*sqlconfig.CategorySum), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCategoryTable struct {
	mock.Mock
}

func (m *mockCategoryTable) FindByID(ctx context.Context, userID, id int64) (*sqlconfig.Category, error) {
	args := m.Called(ctx, userID, id)
	if category := args.Get(0); category != nil {
		return category.(*sqlconfig.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryTable) Insert(ctx context.Context, create *sqlconfig.CategoryCreate) (*sqlconfig.Category, error) {
	args := m.Called(ctx, create)
	if category := args.Get(0); category != nil {
		return category.(*sqlconfig.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryTable) List(ctx context.Context, userID int64, filter *sqlconfig.CategoryFilter) ([]*sqlconfig.Category, error) {
	args := m.Called(ctx, userID, filter)
	if categories := args.Get(0); categories != nil {
		return categories.([]*sqlconfig.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryTable) Update(ctx context.Context, userID, id int64, setter *sqlconfig.CategorySetter) (*sqlconfig.Category, error) {
	args := m.Called(ctx, userID, id, setter)
	if category := args.Get(0); category != nil {
		return category.(*sqlconfig.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryTable) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func newTestWriter() (*storage.Writer, *mockAccountTable, *mockTransactionTable, *mockCategoryTable) {
	accounts := &mockAccountTable{}
	transactions := &mockTransactionTable{}
	categories := &mockCategoryTable{}
	return &storage.Writer{
		Accounts:     accounts,
		Transactions: transactions,
		Categories:   categories,
	}, accounts, transactions, categories
}

func balanceEquals(expected string) interface{} {
	want := decimal.RequireFromString(expected)
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(want)
	})
}
