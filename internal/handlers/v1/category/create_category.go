package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name  string `json:"name" required:"true" minLength:"1" maxLength:"50" doc:"Category name"`
	Type  string `json:"type" required:"true" enum:"income,expense" doc:"Category type, fixed after creation"`
	Color string `json:"color,omitempty" doc:"Display color, defaults to the standard blue"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryResponse is the response body for creating a category.
type CreateCategoryResponse struct {
	Message  string   `json:"message" doc:"Human readable confirmation"`
	Category Category `json:"category"`
}

// CreateCategoryOutput is the response for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponse
}

// categoryCreator is the interface for creating categories.
type categoryCreator interface {
	CreateCategory(ctx context.Context, create *sqlconfig.CategoryCreate) (*sqlconfig.Category, error)
}

// CreateCategoryHandler handles POST /api/categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/api/categories",
		Summary:     "Create a category",
		Description: "Creates a category owned by the caller.",
		Tags:        []string{"Categories"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.CreateCategory(ctx, &sqlconfig.CategoryCreate{
		UserID: userID,
		Name:   input.Body.Name,
		Type:   input.Body.Type,
		Color:  input.Body.Color,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body: CreateCategoryResponse{
			Message:  "Category created successfully",
			Category: serializeCategory(category),
		},
	}, nil
}
