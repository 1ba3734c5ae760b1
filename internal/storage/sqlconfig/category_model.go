package sqlconfig

import (
	"context"

	"github.com/aarondl/opt/omit"
)

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
)

const (
	DefaultCategoryColor       = "#3B82F6"
	UncategorizedCategoryColor = "#808080"
)

// Category represents a category record. A NULL user id marks a global
// category visible to every user.
type Category struct {
	ID     int64  `db:"id"`
	UserID *int64 `db:"user_id"`
	Name   string `db:"name"`
	Type   string `db:"type"`
	Color  string `db:"color"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID int64
	Name   string
	Type   string
	Color  string // defaults to DefaultCategoryColor when empty
}

// CategorySetter carries partial updates. Type is immutable by design and
// has no setter field.
type CategorySetter struct {
	Name  omit.Val[string]
	Color omit.Val[string]
}

// CategoryFilter specifies filters for listing categories.
type CategoryFilter struct {
	Type string
}

// ICategoryTable defines the interface for category storage operations.
// Lookups are scoped to the owner but also match global (NULL user) rows.
type ICategoryTable interface {
	FindByID(ctx context.Context, userID, id int64) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	List(ctx context.Context, userID int64, filter *CategoryFilter) ([]*Category, error)
	Update(ctx context.Context, userID, id int64, setter *CategorySetter) (*Category, error)
	Delete(ctx context.Context, userID, id int64) error
}
