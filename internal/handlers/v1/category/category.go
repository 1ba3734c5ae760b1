package category

import (
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Category is the API response model for a category.
type Category struct {
	ID       int64  `json:"id" doc:"Category id"`
	Name     string `json:"name" doc:"Category name"`
	Type     string `json:"type" doc:"income or expense"`
	Color    string `json:"color" doc:"Display color"`
	IsCustom bool   `json:"is_custom" doc:"False for shared global categories"`
}

func serializeCategory(category *sqlconfig.Category) Category {
	return Category{
		ID:       category.ID,
		Name:     category.Name,
		Type:     category.Type,
		Color:    category.Color,
		IsCustom: category.UserID != nil,
	}
}
