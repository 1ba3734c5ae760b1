package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Writer is a transaction-bound view over the tables that participate in
// balance-mutating operations. All reads and writes through it see and hold
// the same database transaction.
type Writer struct {
	tx bob.Tx

	Accounts     sqlconfig.IAccountTable
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Accounts:     sqlconfig.NewAccountsTableWithExecutor(tx),
		Transactions: sqlconfig.NewTransactionsTableWithExecutor(tx),
		Categories:   sqlconfig.NewCategoriesTableWithExecutor(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
