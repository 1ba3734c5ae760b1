package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IStatsTable = (*StatsTable)(nil)

// StatsTable runs the read-only aggregation queries behind admin reporting.
type StatsTable struct {
	exec bob.Executor
}

func NewStatsTable(db *sql.DB) *StatsTable {
	return &StatsTable{exec: bob.NewDB(db)}
}

// SystemTotals gathers the dashboard counters in a single round trip.
func (t *StatsTable) SystemTotals(ctx context.Context) (*SystemTotals, error) {
	q := psql.Select(
		sm.Columns(psql.Raw(
			"(SELECT COUNT(*) FROM users WHERE role = 'user') AS total_users, " +
				"(SELECT COUNT(*) FROM users WHERE role = 'admin') AS total_admins, " +
				"(SELECT COUNT(*) FROM accounts) AS total_accounts, " +
				"(SELECT COUNT(*) FROM transactions) AS total_transactions, " +
				"(SELECT COUNT(*) FROM categories WHERE user_id IS NOT NULL) AS total_custom_categories, " +
				"(SELECT COUNT(*) FROM budgets) AS total_budgets, " +
				"(SELECT COALESCE(SUM(balance), 0) FROM accounts) AS total_balance, " +
				"(SELECT COUNT(*) FROM users WHERE created_at >= CURRENT_DATE) AS new_users_today, " +
				"(SELECT COUNT(*) FROM transactions WHERE created_at >= CURRENT_DATE) AS transactions_today",
		)),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[SystemTotals]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// TopUsersByTransactions returns the most active non-admin users.
func (t *StatsTable) TopUsersByTransactions(ctx context.Context, limit int) ([]*UserTransactionCount, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("u.id, u.username, COUNT(t.id) AS transaction_count")),
		sm.From("users AS u"),
		sm.InnerJoin("transactions AS t").On(psql.Raw("t.user_id = u.id")),
		sm.Where(psql.Quote("u", "role").EQ(psql.Arg(RoleUser))),
		sm.GroupBy(psql.Raw("u.id")),
		sm.GroupBy(psql.Raw("u.username")),
		sm.OrderBy(psql.Raw("transaction_count")).Desc(),
		sm.Limit(limit),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[UserTransactionCount]())
	if err != nil {
		return nil, err
	}
	result := make([]*UserTransactionCount, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// UserStatistics gathers one user's counters and totals in a single round
// trip.
func (t *StatsTable) UserStatistics(ctx context.Context, userID int64) (*UserStatistics, error) {
	q := psql.Select(
		sm.Columns(psql.Raw(
			"(SELECT COUNT(*) FROM accounts WHERE user_id = ?) AS accounts_count, "+
				"(SELECT COUNT(*) FROM transactions WHERE user_id = ?) AS transactions_count, "+
				"(SELECT COUNT(*) FROM categories WHERE user_id = ?) AS categories_count, "+
				"(SELECT COUNT(*) FROM budgets WHERE user_id = ?) AS budgets_count, "+
				"(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = ? AND type = 'income') AS total_income, "+
				"(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = ? AND type = 'expense') AS total_expenses, "+
				"(SELECT MAX(created_at) FROM transactions WHERE user_id = ?) AS last_transaction_at",
			userID, userID, userID, userID, userID, userID, userID,
		)),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[UserStatistics]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// TableCounts snapshots row counts across all tables.
func (t *StatsTable) TableCounts(ctx context.Context) (*TableCounts, error) {
	q := psql.Select(
		sm.Columns(psql.Raw(
			"(SELECT COUNT(*) FROM users) AS users, " +
				"(SELECT COUNT(*) FROM accounts) AS accounts, " +
				"(SELECT COUNT(*) FROM transactions) AS transactions, " +
				"(SELECT COUNT(*) FROM categories) AS categories, " +
				"(SELECT COUNT(*) FROM budgets) AS budgets, " +
				"(SELECT COUNT(*) FROM admin_logs) AS admin_logs",
		)),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[TableCounts]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// DatabaseSizeMB reports the on-disk size of the current database.
func (t *StatsTable) DatabaseSizeMB(ctx context.Context) (float64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("ROUND(pg_database_size(current_database()) / 1024.0 / 1024.0, 2) AS size_mb")),
	)
	return bob.One(ctx, t.exec, q, scan.ColumnMapper[float64]("size_mb"))
}
