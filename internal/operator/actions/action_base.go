package actions

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrCategoryTypeMismatch = errors.New("category type does not match transaction type")
)

// balanceEffect is the signed contribution a transaction makes to its
// account's cached balance. Transfers carry no effect.
func balanceEffect(transactionType string, amount decimal.Decimal) decimal.Decimal {
	switch transactionType {
	case sqlconfig.TransactionTypeIncome:
		return amount
	case sqlconfig.TransactionTypeExpense:
		return amount.Neg()
	default:
		return decimal.Zero
	}
}

// checkCategory verifies that the category exists, is visible to the user,
// and matches the transaction type. Transfers never carry a category, so any
// category on a transfer is a mismatch.
func checkCategory(ctx context.Context, writer *storage.Writer, userID, categoryID int64, transactionType string) error {
	category, err := writer.Categories.FindByID(ctx, userID, categoryID)
	if err != nil {
		if isNoRows(err) {
			return ErrCategoryNotFound
		}
		return err
	}
	if category.Type != transactionType {
		return ErrCategoryTypeMismatch
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
