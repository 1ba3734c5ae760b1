package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// GetCategoryInput is the Huma input for retrieving a category.
type GetCategoryInput struct {
	ID int64 `path:"id" doc:"Category id"`
}

// GetCategoryResponse is the response body for retrieving a category.
type GetCategoryResponse struct {
	Category Category `json:"category"`
}

// GetCategoryOutput is the response for retrieving a category.
type GetCategoryOutput struct {
	Body GetCategoryResponse
}

// categoryReader is the interface for retrieving a single category.
type categoryReader interface {
	GetCategory(ctx context.Context, userID, id int64) (*sqlconfig.Category, error)
}

// GetCategoryHandler handles GET /api/categories/{id}.
type GetCategoryHandler struct {
	CategoryService categoryReader
}

// NewGetCategoryHandler creates a new GetCategoryHandler.
func NewGetCategoryHandler(svc categoryReader) *GetCategoryHandler {
	return &GetCategoryHandler{CategoryService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/api/categories/{id}",
		Summary:     "Get a category",
		Description: "Retrieves a category visible to the caller.",
		Tags:        []string{"Categories"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *GetCategoryHandler) handle(ctx context.Context, input *GetCategoryInput) (*GetCategoryOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.GetCategory(ctx, userID, input.ID)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetCategoryOutput{Body: GetCategoryResponse{Category: serializeCategory(category)}}, nil
}
