package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Account represents an account record. Balance is a cached value maintained
// incrementally by the transaction actions, never recomputed on read.
type Account struct {
	ID        int64           `db:"id"`
	UserID    int64           `db:"user_id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	Currency  string          `db:"currency"`
	IsActive  bool            `db:"is_active"`
	CreatedAt time.Time       `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	UserID   int64
	Name     string
	Balance  decimal.Decimal
	Currency string // defaults to UAH when empty
	IsActive bool
}

// AccountSetter carries partial updates; unset fields are left untouched.
type AccountSetter struct {
	Name     omit.Val[string]
	Balance  omit.Val[decimal.Decimal]
	Currency omit.Val[string]
	IsActive omit.Val[bool]
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	IsActive *bool
}

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IAccountTable interface {
	FindByID(ctx context.Context, userID, id int64, forUpdate bool) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	List(ctx context.Context, userID int64, filter *AccountFilter) ([]*Account, error)
	Update(ctx context.Context, userID, id int64, setter *AccountSetter) (*Account, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error
	Delete(ctx context.Context, userID, id int64) error
}
