package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
)

// DeleteTransaction removes a transaction and reverses its effect on the
// account's cached balance in the same writer transaction.
type DeleteTransaction struct {
	UserID        int64
	TransactionID int64
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByIDForUpdate(ctx, a.UserID, a.TransactionID)
	if err != nil {
		if isNoRows(err) {
			return ErrTransactionNotFound
		}
		return err
	}

	account, err := writer.Accounts.FindByID(ctx, a.UserID, existing.AccountID, true)
	if err != nil {
		if isNoRows(err) {
			return ErrAccountNotFound
		}
		return err
	}

	if err = writer.Transactions.Delete(ctx, a.TransactionID); err != nil {
		return err
	}

	newBalance := account.Balance.Sub(balanceEffect(existing.Type, existing.Amount))
	return writer.Accounts.UpdateBalance(ctx, existing.AccountID, newBalance)
}
