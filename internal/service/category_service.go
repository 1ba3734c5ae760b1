package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CategoryService handles category business logic. Users see their own
// categories plus the global ones; only their own can be changed.
type CategoryService struct {
	storage *storage.Storage
}

func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// CreateCategory creates a new category for the user.
func (s *CategoryService) CreateCategory(ctx context.Context, create *sqlconfig.CategoryCreate) (*sqlconfig.Category, error) {
	if create.Name == "" || create.Type == "" {
		return nil, &ValidationError{Message: "Missing required fields"}
	}
	if create.Type != sqlconfig.CategoryTypeIncome && create.Type != sqlconfig.CategoryTypeExpense {
		return nil, &ValidationError{Message: `Type must be either "income" or "expense"`}
	}
	return s.storage.Categories.Insert(ctx, create)
}

// GetCategory retrieves a category visible to the user.
func (s *CategoryService) GetCategory(ctx context.Context, userID, id int64) (*sqlconfig.Category, error) {
	category, err := s.storage.Categories.FindByID(ctx, userID, id)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "Category"}
		}
		return nil, err
	}
	return category, nil
}

// ListCategories returns the categories visible to the user, optionally
// filtered by type.
func (s *CategoryService) ListCategories(ctx context.Context, userID int64, filter *sqlconfig.CategoryFilter) ([]*sqlconfig.Category, error) {
	if filter != nil && filter.Type != "" &&
		filter.Type != sqlconfig.CategoryTypeIncome && filter.Type != sqlconfig.CategoryTypeExpense {
		return nil, &ValidationError{Message: `Type must be either "income" or "expense"`}
	}
	return s.storage.Categories.List(ctx, userID, filter)
}

// UpdateCategory renames or recolors one of the user's own categories. The
// type stays fixed so existing transactions keep making sense, and global
// categories cannot be changed.
func (s *CategoryService) UpdateCategory(ctx context.Context, userID, id int64, setter *sqlconfig.CategorySetter) (*sqlconfig.Category, error) {
	category, err := s.storage.Categories.Update(ctx, userID, id, setter)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "Category"}
		}
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes one of the user's own categories. Transactions that
// referenced it become uncategorized via the FK policy.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, id int64) error {
	err := s.storage.Categories.Delete(ctx, userID, id)
	if isNoRows(err) {
		return &NotFoundError{Resource: "Category"}
	}
	return err
}
