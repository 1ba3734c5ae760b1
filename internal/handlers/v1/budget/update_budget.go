package budget

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// UpdateBudgetBody is the request body for updating a budget. Absent fields
// are left untouched.
type UpdateBudgetBody struct {
	Amount    *float64 `json:"amount,omitempty" doc:"Positive spending ceiling"`
	StartDate *string  `json:"start_date,omitempty" doc:"Inclusive range start, YYYY-MM-DD"`
	EndDate   *string  `json:"end_date,omitempty" doc:"Inclusive range end, YYYY-MM-DD"`
}

// UpdateBudgetInput is the Huma input for updating a budget.
type UpdateBudgetInput struct {
	ID   int64 `path:"id" doc:"Budget id"`
	Body UpdateBudgetBody
}

// UpdateBudgetResponse is the response body for updating a budget.
type UpdateBudgetResponse struct {
	Message string `json:"message" doc:"Human readable confirmation"`
	Budget  Budget `json:"budget"`
}

// UpdateBudgetOutput is the response for updating a budget.
type UpdateBudgetOutput struct {
	Body UpdateBudgetResponse
}

// budgetUpdater is the interface for updating budgets.
type budgetUpdater interface {
	UpdateBudget(ctx context.Context, userID, id int64, setter *sqlconfig.BudgetSetter) (*service.BudgetStatus, error)
}

// UpdateBudgetHandler handles PUT /api/budgets/{id}.
type UpdateBudgetHandler struct {
	BudgetService budgetUpdater
}

// NewUpdateBudgetHandler creates a new UpdateBudgetHandler.
func NewUpdateBudgetHandler(svc budgetUpdater) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{BudgetService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPut,
		Path:        "/api/budgets/{id}",
		Summary:     "Update a budget",
		Description: "Applies a partial update. The merged date range must stay valid.",
		Tags:        []string{"Budgets"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	setter := &sqlconfig.BudgetSetter{}
	if input.Body.Amount != nil {
		setter.Amount = omit.From(decimal.NewFromFloat(*input.Body.Amount))
	}
	if input.Body.StartDate != nil {
		start, err := parseDate(*input.Body.StartDate)
		if err != nil {
			return nil, err
		}
		setter.StartDate = omit.From(start)
	}
	if input.Body.EndDate != nil {
		end, err := parseDate(*input.Body.EndDate)
		if err != nil {
			return nil, err
		}
		setter.EndDate = omit.From(end)
	}

	status, err := h.BudgetService.UpdateBudget(ctx, userID, input.ID, setter)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &UpdateBudgetOutput{
		Body: UpdateBudgetResponse{
			Message: "Budget updated successfully",
			Budget:  serializeBudget(status),
		},
	}, nil
}
