// Package admin exposes the administrative endpoints: cross-user reporting,
// user management, the audit log and system health. Every operation verifies
// the admin role before touching anything.
package admin

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"

	defaultUsersPerPage = 20
	defaultLogsPerPage  = 50
)

// adminGate verifies the caller holds the admin role.
type adminGate interface {
	RequireAdmin(ctx context.Context, userID int64) (*sqlconfig.User, error)
}

// User is the serialized form of a user record shown to admins.
type User struct {
	ID        int64  `json:"id" doc:"User id"`
	Username  string `json:"username" doc:"Unique username"`
	Email     string `json:"email" doc:"Unique email address"`
	Role      string `json:"role" doc:"user or admin"`
	CreatedAt string `json:"created_at" doc:"Registration timestamp"`
}

func serializeUser(user *sqlconfig.User) User {
	return User{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(timestampLayout),
	}
}

// Account mirrors the owner-facing account shape for the admin drill-down.
type Account struct {
	ID        int64   `json:"id" doc:"Account id"`
	Name      string  `json:"name" doc:"Account name"`
	Balance   float64 `json:"balance" doc:"Cached running balance"`
	Currency  string  `json:"currency" doc:"ISO currency code"`
	IsActive  bool    `json:"is_active" doc:"Whether the account is active"`
	CreatedAt string  `json:"created_at" doc:"Creation timestamp"`
}

func serializeAccount(account *sqlconfig.Account) Account {
	return Account{
		ID:        account.ID,
		Name:      account.Name,
		Balance:   account.Balance.InexactFloat64(),
		Currency:  account.Currency,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt.Format(timestampLayout),
	}
}

// Category mirrors the owner-facing category shape for the admin drill-down.
type Category struct {
	ID    int64  `json:"id" doc:"Category id"`
	Name  string `json:"name" doc:"Category name"`
	Type  string `json:"type" doc:"income or expense"`
	Color string `json:"color" doc:"Hex color"`
}

func serializeCategory(category *sqlconfig.Category) Category {
	return Category{
		ID:    category.ID,
		Name:  category.Name,
		Type:  category.Type,
		Color: category.Color,
	}
}

// Transaction mirrors the owner-facing transaction shape for the admin
// drill-down.
type Transaction struct {
	ID            int64   `json:"id" doc:"Transaction id"`
	AccountID     int64   `json:"account_id" doc:"Owning account id"`
	CategoryID    *int64  `json:"category_id" doc:"Category id, null when uncategorized"`
	CategoryName  *string `json:"category_name" doc:"Joined category name"`
	CategoryColor string  `json:"category_color" doc:"Joined category color"`
	Amount        float64 `json:"amount" doc:"Positive decimal amount"`
	Description   string  `json:"description" doc:"Free text description"`
	Type          string  `json:"type" doc:"income, expense or transfer"`
	Date          string  `json:"date" doc:"Transaction date, YYYY-MM-DD"`
	CreatedAt     string  `json:"created_at" doc:"Creation timestamp"`
}

func serializeTransaction(transaction *sqlconfig.Transaction) Transaction {
	color := sqlconfig.UncategorizedCategoryColor
	if transaction.CategoryColor != nil {
		color = *transaction.CategoryColor
	}
	return Transaction{
		ID:            transaction.ID,
		AccountID:     transaction.AccountID,
		CategoryID:    transaction.CategoryID,
		CategoryName:  transaction.CategoryName,
		CategoryColor: color,
		Amount:        transaction.Amount.InexactFloat64(),
		Description:   transaction.Description,
		Type:          transaction.Type,
		Date:          transaction.Date.Format(dateLayout),
		CreatedAt:     transaction.CreatedAt.Format(timestampLayout),
	}
}

// Budget is the raw budget shape for the admin drill-down; spending figures
// are an owner-facing concern and not derived here.
type Budget struct {
	ID            int64   `json:"id" doc:"Budget id"`
	CategoryID    int64   `json:"category_id" doc:"Expense category the budget covers"`
	CategoryName  *string `json:"category_name" doc:"Joined category name"`
	CategoryColor string  `json:"category_color" doc:"Joined category color"`
	Amount        float64 `json:"amount" doc:"Budgeted ceiling"`
	StartDate     string  `json:"start_date" doc:"Inclusive range start, YYYY-MM-DD"`
	EndDate       string  `json:"end_date" doc:"Inclusive range end, YYYY-MM-DD"`
}

func serializeBudget(budget *sqlconfig.Budget) Budget {
	color := sqlconfig.UncategorizedCategoryColor
	if budget.CategoryColor != nil {
		color = *budget.CategoryColor
	}
	return Budget{
		ID:            budget.ID,
		CategoryID:    budget.CategoryID,
		CategoryName:  budget.CategoryName,
		CategoryColor: color,
		Amount:        budget.Amount.InexactFloat64(),
		StartDate:     budget.StartDate.Format(dateLayout),
		EndDate:       budget.EndDate.Format(dateLayout),
	}
}

// pageCount derives the number of pages a paginated listing spans.
func pageCount(total int64, perPage int) int64 {
	if perPage <= 0 {
		return 0
	}
	return (total + int64(perPage) - 1) / int64(perPage)
}
