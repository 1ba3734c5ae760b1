package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Storage bundles the database handle with the per-table access interfaces.
type Storage struct {
	DB  *sql.DB
	bdb bob.DB

	Users        sqlconfig.IUserTable
	Accounts     sqlconfig.IAccountTable
	Categories   sqlconfig.ICategoryTable
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
	AdminLogs    sqlconfig.IAdminLogTable
	Stats        sqlconfig.IStatsTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}

	return &Storage{
		DB:           db,
		bdb:          bob.NewDB(db),
		Users:        sqlconfig.NewUsersTable(db),
		Accounts:     sqlconfig.NewAccountsTable(db),
		Categories:   sqlconfig.NewCategoriesTable(db),
		Transactions: sqlconfig.NewTransactionsTable(db),
		Budgets:      sqlconfig.NewBudgetsTable(db),
		AdminLogs:    sqlconfig.NewAdminLogsTable(db),
		Stats:        sqlconfig.NewStatsTable(db),
	}, nil
}

// Write opens a database transaction and returns a Writer whose tables are
// bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
