package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Budget represents a budget record: a spending ceiling for one expense
// category over a date range. Spent/remaining/percent are derived on read by
// the service layer and never persisted.
type Budget struct {
	ID            int64           `db:"id"`
	UserID        int64           `db:"user_id"`
	CategoryID    int64           `db:"category_id"`
	Amount        decimal.Decimal `db:"amount"`
	StartDate     time.Time       `db:"start_date"`
	EndDate       time.Time       `db:"end_date"`
	CategoryName  *string         `db:"category_name"`
	CategoryColor *string         `db:"category_color"`
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	UserID     int64
	CategoryID int64
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
}

// BudgetSetter carries partial updates; unset fields are left untouched.
type BudgetSetter struct {
	Amount    omit.Val[decimal.Decimal]
	StartDate omit.Val[time.Time]
	EndDate   omit.Val[time.Time]
}

// BudgetFilter restricts listing to budgets whose [start_date, end_date]
// overlaps the given range.
type BudgetFilter struct {
	OverlapStart *time.Time
	OverlapEnd   *time.Time
}

// IBudgetTable defines the interface for budget storage operations.
type IBudgetTable interface {
	FindByID(ctx context.Context, userID, id int64) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (*Budget, error)
	List(ctx context.Context, userID int64, filter *BudgetFilter) ([]*Budget, error)
	Update(ctx context.Context, userID, id int64, setter *BudgetSetter) (*Budget, error)
	Delete(ctx context.Context, userID, id int64) error
}
