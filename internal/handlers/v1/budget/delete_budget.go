package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
)

// DeleteBudgetInput is the Huma input for deleting a budget.
type DeleteBudgetInput struct {
	ID int64 `path:"id" doc:"Budget id"`
}

// DeleteBudgetResponse is the response body for deleting a budget.
type DeleteBudgetResponse struct {
	Message string `json:"message" doc:"Human readable confirmation"`
}

// DeleteBudgetOutput is the response for deleting a budget.
type DeleteBudgetOutput struct {
	Body DeleteBudgetResponse
}

// budgetDeleter is the interface for deleting budgets.
type budgetDeleter interface {
	DeleteBudget(ctx context.Context, userID, id int64) error
}

// DeleteBudgetHandler handles DELETE /api/budgets/{id}.
type DeleteBudgetHandler struct {
	BudgetService budgetDeleter
}

// NewDeleteBudgetHandler creates a new DeleteBudgetHandler.
func NewDeleteBudgetHandler(svc budgetDeleter) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{BudgetService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-budget",
		Method:      http.MethodDelete,
		Path:        "/api/budgets/{id}",
		Summary:     "Delete a budget",
		Description: "Removes one of the caller's budgets.",
		Tags:        []string{"Budgets"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.BudgetService.DeleteBudget(ctx, userID, input.ID); err != nil {
		return nil, httperr.FromService(err)
	}
	return &DeleteBudgetOutput{Body: DeleteBudgetResponse{Message: "Budget deleted successfully"}}, nil
}
