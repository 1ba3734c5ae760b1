package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type mockUserTable struct {
	mock.Mock
}

func (m *mockUserTable) FindByID(ctx context.Context, id int64) (*sqlconfig.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*sqlconfig.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserTable) FindByUsername(ctx context.Context, username string) (*sqlconfig.User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*sqlconfig.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserTable) FindByEmail(ctx context.Context, email string) (*sqlconfig.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*sqlconfig.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserTable) Insert(ctx context.Context, create *sqlconfig.UserCreate) (*sqlconfig.User, error) {
	args := m.Called(ctx, create)
	if user := args.Get(0); user != nil {
		return user.(*sqlconfig.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserTable) List(ctx context.Context, filter *sqlconfig.UserFilter) ([]*sqlconfig.User, int64, error) {
	args := m.Called(ctx, filter)
	if users := args.Get(0); users != nil {
		return users.([]*sqlconfig.User), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockUserTable) Update(ctx context.Context, id int64, setter *sqlconfig.UserSetter) (*sqlconfig.User, error) {
	args := m.Called(ctx, id, setter)
	if user := args.Get(0); user != nil {
		return user.(*sqlconfig.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserTable) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

type mockBudgetTable struct {
	mock.Mock
}

func (m *mockBudgetTable) FindByID(ctx context.Context, userID, id int64) (*sqlconfig.Budget, error) {
	args := m.Called(ctx, userID, id)
	if budget := args.Get(0); budget != nil {
		return budget.(*sqlconfig.Budget), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBudgetTable) Insert(ctx context.Context, create *sqlconfig.BudgetCreate) (*sqlconfig.Budget, error) {
	args := m.Called(ctx, create)
	if budget := args.Get(0); budget != nil {
		return budget.(*sqlconfig.Budget), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBudgetTable) List(ctx context.Context, userID int64, filter *sqlconfig.BudgetFilter) ([]*sqlconfig.Budget, error) {
	args := m.Called(ctx, userID, filter)
	if budgets := args.Get(0); budgets != nil {
		return budgets.([]*sqlconfig.Budget), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBudgetTable) Update(ctx context.Context, userID, id int64, setter *sqlconfig.BudgetSetter) (*sqlconfig.Budget, error) {
	args := m.Called(ctx, userID, id, setter)
	if budget := args.Get(0); budget != nil {
		return budget.(*sqlconfig.Budget), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBudgetTable) Delete(ctx context.Context, userID, id int64) error {
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
