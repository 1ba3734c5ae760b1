package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct {
	Period string `query:"period" doc:"Restrict to budgets overlapping the current week, month or year"`
}

// ListBudgetsResponse is the response body for listing budgets.
type ListBudgetsResponse struct {
	Budgets []Budget `json:"budgets"`
}

// ListBudgetsOutput is the response for listing budgets.
type ListBudgetsOutput struct {
	Body ListBudgetsResponse
}

// budgetLister is the interface for listing budgets.
type budgetLister interface {
	ListBudgets(ctx context.Context, userID int64, period string) ([]*service.BudgetStatus, error)
}

// ListBudgetsHandler handles GET /api/budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/api/budgets",
		Summary:     "List budgets",
		Description: "Lists the caller's budgets with spending figures.",
		Tags:        []string{"Budgets"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	statuses, err := h.BudgetService.ListBudgets(ctx, userID, input.Period)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	budgets := make([]Budget, len(statuses))
	for i, status := range statuses {
		budgets[i] = serializeBudget(status)
	}
	return &ListBudgetsOutput{Body: ListBudgetsResponse{Budgets: budgets}}, nil
}
