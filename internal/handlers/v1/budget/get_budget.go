package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/service"
)

// GetBudgetInput is the Huma input for retrieving a budget.
type GetBudgetInput struct {
	ID int64 `path:"id" doc:"Budget id"`
}

// GetBudgetResponse is the response body for retrieving a budget.
type GetBudgetResponse struct {
	Budget Budget `json:"budget"`
}

// GetBudgetOutput is the response for retrieving a budget.
type GetBudgetOutput struct {
	Body GetBudgetResponse
}

// budgetReader is the interface for retrieving a single budget.
type budgetReader interface {
	GetBudget(ctx context.Context, userID, id int64) (*service.BudgetStatus, error)
}

// GetBudgetHandler handles GET /api/budgets/{id}.
type GetBudgetHandler struct {
	BudgetService budgetReader
}

// NewGetBudgetHandler creates a new GetBudgetHandler.
func NewGetBudgetHandler(svc budgetReader) *GetBudgetHandler {
	return &GetBudgetHandler{BudgetService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/api/budgets/{id}",
		Summary:     "Get a budget",
		Description: "Retrieves one of the caller's budgets with spending figures.",
		Tags:        []string{"Budgets"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *GetBudgetHandler) handle(ctx context.Context, input *GetBudgetInput) (*GetBudgetOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	status, err := h.BudgetService.GetBudget(ctx, userID, input.ID)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetBudgetOutput{Body: GetBudgetResponse{Budget: serializeBudget(status)}}, nil
}
