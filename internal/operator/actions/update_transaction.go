package actions

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// UpdateTransaction applies a partial update to a transaction. The old
// balance effect is reversed and the new one applied in the same writer
// transaction, so amount and type changes never double-count. Result holds
// the updated row once Perform succeeds.
type UpdateTransaction struct {
	UserID        int64
	TransactionID int64

	Amount      omit.Val[decimal.Decimal]
	Type        omit.Val[string]
	Description omit.Val[string]
	Date        omit.Val[time.Time]
	CategoryID  omitnull.Val[int64]

	Result *sqlconfig.Transaction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
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

	newAmount := existing.Amount
	if a.Amount.IsValue() {
		newAmount = a.Amount.MustGet()
	}
	newType := existing.Type
	if a.Type.IsValue() {
		newType = a.Type.MustGet()
	}
	newCategoryID := existing.CategoryID
	if !a.CategoryID.IsUnset() {
		newCategoryID = a.CategoryID.MustPtr()
	}

	if newCategoryID != nil {
		if err = checkCategory(ctx, writer, a.UserID, *newCategoryID, newType); err != nil {
			return err
		}
	}

	setter := &sqlconfig.TransactionSetter{
		Amount:      a.Amount,
		Type:        a.Type,
		Description: a.Description,
		Date:        a.Date,
		CategoryID:  a.CategoryID,
	}
	if err = writer.Transactions.Update(ctx, a.TransactionID, setter); err != nil {
		return err
	}

	oldEffect := balanceEffect(existing.Type, existing.Amount)
	newEffect := balanceEffect(newType, newAmount)
	newBalance := account.Balance.Sub(oldEffect).Add(newEffect)
	if err = writer.Accounts.UpdateBalance(ctx, existing.AccountID, newBalance); err != nil {
		return err
	}

	updated, err := writer.Transactions.FindByID(ctx, a.UserID, a.TransactionID)
	if err != nil {
		return err
	}
	a.Result = updated
	return nil
}
