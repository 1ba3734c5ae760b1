package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SystemTotals is the cross-user aggregate shown on the admin dashboard.
type SystemTotals struct {
	TotalUsers            int64           `db:"total_users"`
	TotalAdmins           int64           `db:"total_admins"`
	TotalAccounts         int64           `db:"total_accounts"`
	TotalTransactions     int64           `db:"total_transactions"`
	TotalCustomCategories int64           `db:"total_custom_categories"`
	TotalBudgets          int64           `db:"total_budgets"`
	TotalBalance          decimal.Decimal `db:"total_balance"`
	NewUsersToday         int64           `db:"new_users_today"`
	TransactionsToday     int64           `db:"transactions_today"`
}

// UserTransactionCount is one entry of the top-N-by-transactions listing.
type UserTransactionCount struct {
	ID               int64  `db:"id"`
	Username         string `db:"username"`
	TransactionCount int64  `db:"transaction_count"`
}

// UserStatistics is the per-user aggregate shown in the admin user listing.
type UserStatistics struct {
	AccountsCount     int64           `db:"accounts_count"`
	TransactionsCount int64           `db:"transactions_count"`
	CategoriesCount   int64           `db:"categories_count"`
	BudgetsCount      int64           `db:"budgets_count"`
	TotalIncome       decimal.Decimal `db:"total_income"`
	TotalExpenses     decimal.Decimal `db:"total_expenses"`
	LastTransactionAt *time.Time      `db:"last_transaction_at"`
}

// TableCounts is the per-table row count snapshot for the system info view.
type TableCounts struct {
	Users        int64 `db:"users"`
	Accounts     int64 `db:"accounts"`
	Transactions int64 `db:"transactions"`
	Categories   int64 `db:"categories"`
	Budgets      int64 `db:"budgets"`
	AdminLogs    int64 `db:"admin_logs"`
}

// IStatsTable defines the read-only cross-table aggregation queries used by
// admin reporting.
type IStatsTable interface {
	SystemTotals(ctx context.Context) (*SystemTotals, error)
	TopUsersByTransactions(ctx context.Context, limit int) ([]*UserTransactionCount, error)
	UserStatistics(ctx context.Context, userID int64) (*UserStatistics, error)
	TableCounts(ctx context.Context) (*TableCounts, error)
	DatabaseSizeMB(ctx context.Context) (float64, error)
}
