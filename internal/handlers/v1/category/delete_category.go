package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	ID int64 `path:"id" doc:"Category id"`
}

// DeleteCategoryResponse is the response body for deleting a category.
type DeleteCategoryResponse struct {
	Message string `json:"message" doc:"Human readable confirmation"`
}

// DeleteCategoryOutput is the response for deleting a category.
type DeleteCategoryOutput struct {
	Body DeleteCategoryResponse
}

// categoryDeleter is the interface for deleting categories.
type categoryDeleter interface {
	DeleteCategory(ctx context.Context, userID, id int64) error
}

// DeleteCategoryHandler handles DELETE /api/categories/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/api/categories/{id}",
		Summary:     "Delete a category",
		Description: "Removes one of the caller's own categories. Its transactions become uncategorized.",
		Tags:        []string{"Categories"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.CategoryService.DeleteCategory(ctx, userID, input.ID); err != nil {
		return nil, httperr.FromService(err)
	}
	return &DeleteCategoryOutput{Body: DeleteCategoryResponse{Message: "Category deleted successfully"}}, nil
}
