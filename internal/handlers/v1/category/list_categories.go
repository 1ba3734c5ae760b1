package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	Type string `query:"type" doc:"Restrict to one category type, income or expense"`
}

// ListCategoriesResponse is the response body for listing categories.
type ListCategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// ListCategoriesOutput is the response for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponse
}

// categoryLister is the interface for listing categories.
type categoryLister interface {
	ListCategories(ctx context.Context, userID int64, filter *sqlconfig.CategoryFilter) ([]*sqlconfig.Category, error)
}

// ListCategoriesHandler handles GET /api/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/categories",
		Summary:     "List categories",
		Description: "Lists the caller's categories plus the shared global ones.",
		Tags:        []string{"Categories"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := h.CategoryService.ListCategories(ctx, userID, &sqlconfig.CategoryFilter{Type: input.Type})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	serialized := make([]Category, len(categories))
	for i, category := range categories {
		serialized[i] = serializeCategory(category)
	}
	return &ListCategoriesOutput{Body: ListCategoriesResponse{Categories: serialized}}, nil
}
