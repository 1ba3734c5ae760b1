package category

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// UpdateCategoryBody is the request body for updating a category. The type
// cannot be changed.
type UpdateCategoryBody struct {
	Name  *string `json:"name,omitempty" minLength:"1" maxLength:"50" doc:"Category name"`
	Color *string `json:"color,omitempty" doc:"Display color"`
}

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	ID   int64 `path:"id" doc:"Category id"`
	Body UpdateCategoryBody
}

// UpdateCategoryResponse is the response body for updating a category.
type UpdateCategoryResponse struct {
	Message  string   `json:"message" doc:"Human readable confirmation"`
	Category Category `json:"category"`
}

// UpdateCategoryOutput is the response for updating a category.
type UpdateCategoryOutput struct {
	Body UpdateCategoryResponse
}

// categoryUpdater is the interface for updating categories.
type categoryUpdater interface {
	UpdateCategory(ctx context.Context, userID, id int64, setter *sqlconfig.CategorySetter) (*sqlconfig.Category, error)
}

// UpdateCategoryHandler handles PUT /api/categories/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/api/categories/{id}",
		Summary:     "Update a category",
		Description: "Renames or recolors one of the caller's own categories.",
		Tags:        []string{"Categories"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	setter := &sqlconfig.CategorySetter{}
	if input.Body.Name != nil {
		setter.Name = omit.From(*input.Body.Name)
	}
	if input.Body.Color != nil {
		setter.Color = omit.From(*input.Body.Color)
	}

	category, err := h.CategoryService.UpdateCategory(ctx, userID, input.ID, setter)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &UpdateCategoryOutput{
		Body: UpdateCategoryResponse{
			Message:  "Category updated successfully",
			Category: serializeCategory(category),
		},
	}, nil
}
