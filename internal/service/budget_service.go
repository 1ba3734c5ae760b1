package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// BudgetStatus is a budget together with its derived spending figures.
// Remaining may go negative; it is not clamped.
type BudgetStatus struct {
	*sqlconfig.Budget
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	Percent   float64
}

// BudgetService handles budget business logic.
type BudgetService struct {
	storage *storage.Storage
	now     func() time.Time
}

func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store, now: time.Now}
}

// periodRange resolves a named period to a date range relative to today.
// Weeks run Monday to Sunday.
func periodRange(period string, today time.Time) (time.Time, time.Time, error) {
	year, month, day := today.Date()
	today = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	switch period {
	case "week":
		weekday := int(today.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start := today.AddDate(0, 0, 1-weekday)
		return start, start.AddDate(0, 0, 6), nil
	case "month":
		start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), nil
	case "year":
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, time.Time{}, &ValidationError{Message: `Period must be "week", "month", or "year"`}
}

// status derives spent, remaining and percent-used for a budget by summing
// the matching expense transactions.
func (s *BudgetService) status(ctx context.Context, budget *sqlconfig.Budget) (*BudgetStatus, error) {
	spent, err := s.storage.Transactions.SumExpenses(ctx, budget.UserID, budget.CategoryID, budget.StartDate, budget.EndDate)
	if err != nil {
		return nil, err
	}

	percent := 0.0
	if budget.Amount.IsPositive() {
		percent = spent.Div(budget.Amount).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
	return &BudgetStatus{
		Budget:    budget,
		Spent:     spent,
		Remaining: budget.Amount.Sub(spent),
		Percent:   percent,
	}, nil
}

// CreateBudget creates a budget for one of the user's expense categories.
func (s *BudgetService) CreateBudget(ctx context.Context, create *sqlconfig.BudgetCreate) (*BudgetStatus, error) {
	category, err := s.storage.Categories.FindByID(ctx, create.UserID, create.CategoryID)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "Category"}
		}
		return nil, err
	}
	if category.Type != sqlconfig.CategoryTypeExpense {
		return nil, &ValidationError{Message: "Budget can only be created for expense categories"}
	}
	if !create.Amount.IsPositive() {
		return nil, &ValidationError{Message: "Amount must be positive"}
	}
	if create.EndDate.Before(create.StartDate) {
		return nil, &ValidationError{Message: "End date must not be before start date"}
	}

	budget, err := s.storage.Budgets.Insert(ctx, create)
	if err != nil {
		return nil, err
	}
	return s.status(ctx, budget)
}

// GetBudget retrieves one of the user's budgets with its spending figures.
func (s *BudgetService) GetBudget(ctx context.Context, userID, id int64) (*BudgetStatus, error) {
	budget, err := s.storage.Budgets.FindByID(ctx, userID, id)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "Budget"}
		}
		return nil, err
	}
	return s.status(ctx, budget)
}

// ListBudgets returns the user's budgets with spending figures. A period
// name restricts the listing to budgets whose range overlaps that period.
func (s *BudgetService) ListBudgets(ctx context.Context, userID int64, period string) ([]*BudgetStatus, error) {
	var filter *sqlconfig.BudgetFilter
	if period != "" {
		start, end, err := periodRange(period, s.now())
		if err != nil {
			return nil, err
		}
		filter = &sqlconfig.BudgetFilter{OverlapStart: &start, OverlapEnd: &end}
	}

	budgets, err := s.storage.Budgets.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	statuses := make([]*BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		status, err := s.status(ctx, budget)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// UpdateBudget applies a partial update; the merged date range must stay
// valid.
func (s *BudgetService) UpdateBudget(ctx context.Context, userID, id int64, setter *sqlconfig.BudgetSetter) (*BudgetStatus, error) {
	existing, err := s.storage.Budgets.FindByID(ctx, userID, id)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "Budget"}
		}
		return nil, err
	}

	if setter.Amount.IsValue() && !setter.Amount.MustGet().IsPositive() {
		return nil, &ValidationError{Message: "Amount must be positive"}
	}
	newStart := existing.StartDate
	if setter.StartDate.IsValue() {
		newStart = setter.StartDate.MustGet()
	}
	newEnd := existing.EndDate
	if setter.EndDate.IsValue() {
		newEnd = setter.EndDate.MustGet()
	}
	if newEnd.Before(newStart) {
		return nil, &ValidationError{Message: "End date must not be before start date"}
	}

	budget, err := s.storage.Budgets.Update(ctx, userID, id, setter)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "Budget"}
		}
		return nil, err
	}
	return s.status(ctx, budget)
}

// DeleteBudget removes one of the user's budgets.
func (s *BudgetService) DeleteBudget(ctx context.Context, userID, id int64) error {
	err := s.storage.Budgets.Delete(ctx, userID, id)
	if isNoRows(err) {
		return &NotFoundError{Resource: "Budget"}
	}
	return err
}
