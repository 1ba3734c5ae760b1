package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"
)

// Transaction represents a transaction record. CategoryName and CategoryColor
// are populated from the joined category on reads and are nil for
// uncategorized rows.
type Transaction struct {
	ID            int64           `db:"id"`
	UserID        int64           `db:"user_id"`
	AccountID     int64           `db:"account_id"`
	CategoryID    *int64          `db:"category_id"`
	Amount        decimal.Decimal `db:"amount"`
	Type          string          `db:"type"`
	Description   string          `db:"description"`
	Date          time.Time       `db:"date"`
	CreatedAt     time.Time       `db:"created_at"`
	CategoryName  *string         `db:"category_name"`
	CategoryColor *string         `db:"category_color"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID      int64
	AccountID   int64
	CategoryID  *int64
	Amount      decimal.Decimal
	Type        string
	Description string
	Date        time.Time
}

// TransactionSetter carries partial updates. CategoryID is tri-state:
// unset leaves the column alone, null clears it.
type TransactionSetter struct {
	Amount      omit.Val[decimal.Decimal]
	Type        omit.Val[string]
	Description omit.Val[string]
	Date        omit.Val[time.Time]
	CategoryID  omitnull.Val[int64]
}

// TransactionFilter specifies filters for listing transactions. Date bounds
// are inclusive day-level bounds.
type TransactionFilter struct {
	Type       string
	AccountID  *int64
	CategoryID *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

// CategorySum is one bucket of the summary grouping: a transaction type and
// category pair with the accumulated amount. Uncategorized rows bucket under
// id 0.
type CategorySum struct {
	Type       string          `db:"type"`
	CategoryID int64           `db:"category_id"`
	Name       string          `db:"name"`
	Color      string          `db:"color"`
	Amount     decimal.Decimal `db:"amount"`
}

// ITransactionTable defines the interface for transaction storage operations.
type ITransactionTable interface {
	FindByID(ctx context.Context, userID, id int64) (*Transaction, error)
	FindByIDForUpdate(ctx context.Context, userID, id int64) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id int64, setter *TransactionSetter) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, userID int64, filter *TransactionFilter) ([]*Transaction, error)
	SumExpenses(ctx context.Context, userID, categoryID int64, start, end time.Time) (decimal.Decimal, error)
	SumByCategory(ctx context.Context, userID int64, start, end *time.Time) ([]*CategorySum, error)
}
