package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	CategoryID int64   `json:"category_id" required:"true" doc:"Expense category to budget"`
	Amount     float64 `json:"amount" required:"true" doc:"Positive spending ceiling"`
	StartDate  string  `json:"start_date" required:"true" doc:"Inclusive range start, YYYY-MM-DD"`
	EndDate    string  `json:"end_date" required:"true" doc:"Inclusive range end, YYYY-MM-DD"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body CreateBudgetBody
}

// CreateBudgetResponse is the response body for creating a budget.
type CreateBudgetResponse struct {
	Message string `json:"message" doc:"Human readable confirmation"`
	Budget  Budget `json:"budget"`
}

// CreateBudgetOutput is the response for creating a budget.
type CreateBudgetOutput struct {
	Status int
	Body   CreateBudgetResponse
}

// budgetCreator is the interface for creating budgets.
type budgetCreator interface {
	CreateBudget(ctx context.Context, create *sqlconfig.BudgetCreate) (*service.BudgetStatus, error)
}

// CreateBudgetHandler handles POST /api/budgets.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-budget",
		Method:      http.MethodPost,
		Path:        "/api/budgets",
		Summary:     "Create a budget",
		Description: "Creates a spending ceiling for one expense category over a date range.",
		Tags:        []string{"Budgets"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	start, err := parseDate(input.Body.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(input.Body.EndDate)
	if err != nil {
		return nil, err
	}

	status, err := h.BudgetService.CreateBudget(ctx, &sqlconfig.BudgetCreate{
		UserID:     userID,
		CategoryID: input.Body.CategoryID,
		Amount:     decimal.NewFromFloat(input.Body.Amount),
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &CreateBudgetOutput{
		Status: http.StatusCreated,
		Body: CreateBudgetResponse{
			Message: "Budget created successfully",
			Budget:  serializeBudget(status),
		},
	}, nil
}
