package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CreateTransaction inserts a transaction and folds its effect into the
// account's cached balance, all within one writer transaction. Result holds
// the stored row once Perform succeeds.
type CreateTransaction struct {
	UserID      int64
	AccountID   int64
	CategoryID  *int64
	Amount      decimal.Decimal
	Type        string
	Description string
	Date        time.Time

	Result *sqlconfig.Transaction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Accounts.FindByID(ctx, a.UserID, a.AccountID, true)
	if err != nil {
		if isNoRows(err) {
			return ErrAccountNotFound
		}
		return err
	}

	if a.CategoryID != nil {
		if err = checkCategory(ctx, writer, a.UserID, *a.CategoryID, a.Type); err != nil {
			return err
		}
	}

	created, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		UserID:      a.UserID,
		AccountID:   a.AccountID,
		CategoryID:  a.CategoryID,
		Amount:      a.Amount,
		Type:        a.Type,
		Description: a.Description,
		Date:        a.Date,
	})
	if err != nil {
		return err
	}

	newBalance := account.Balance.Add(balanceEffect(a.Type, a.Amount))
	if err = writer.Accounts.UpdateBalance(ctx, a.AccountID, newBalance); err != nil {
		return err
	}

	a.Result = created
	return nil
}
