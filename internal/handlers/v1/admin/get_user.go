package admin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/service"
)

// GetUserInput is the Huma input for the user drill-down.
type GetUserInput struct {
	ID int64 `path:"id" doc:"User id"`
}

// GetUserResponse is the response body for the user drill-down: the user's
// record together with everything they own.
type GetUserResponse struct {
	User
	Accounts           []Account     `json:"accounts"`
	Categories         []Category    `json:"categories" doc:"The user's own categories, globals excluded"`
	RecentTransactions []Transaction `json:"recent_transactions" doc:"Most recent transactions"`
	Budgets            []Budget      `json:"budgets"`
}

// GetUserOutput is the response for the user drill-down.
type GetUserOutput struct {
	Body GetUserResponse
}

// userDetailsReader is the interface for the user drill-down.
type userDetailsReader interface {
	adminGate
	GetUserDetails(ctx context.Context, adminID, userID int64, ip string) (*service.UserDetails, error)
}

// GetUserHandler handles GET /api/admin/users/{id}.
type GetUserHandler struct {
	AdminService userDetailsReader
}

// NewGetUserHandler creates a new GetUserHandler.
func NewGetUserHandler(svc userDetailsReader) *GetUserHandler {
	return &GetUserHandler{AdminService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "admin-get-user",
		Method:      http.MethodGet,
		Path:        "/api/admin/users/{id}",
		Summary:     "Get user details",
		Description: "Retrieves one user's record with their accounts, categories, recent transactions and budgets.",
		Tags:        []string{"Admin"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *GetUserHandler) handle(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.AdminService.RequireAdmin(ctx, userID); err != nil {
		return nil, httperr.FromService(err)
	}

	details, err := h.AdminService.GetUserDetails(ctx, userID, input.ID, identity.ClientIP(ctx))
	if err != nil {
		return nil, httperr.FromService(err)
	}

	accounts := make([]Account, len(details.Accounts))
	for i, account := range details.Accounts {
		accounts[i] = serializeAccount(account)
	}
	categories := make([]Category, len(details.Categories))
	for i, category := range details.Categories {
		categories[i] = serializeCategory(category)
	}
	transactions := make([]Transaction, len(details.RecentTransactions))
	for i, transaction := range details.RecentTransactions {
		transactions[i] = serializeTransaction(transaction)
	}
	budgets := make([]Budget, len(details.Budgets))
	for i, budget := range details.Budgets {
		budgets[i] = serializeBudget(budget)
	}

	return &GetUserOutput{
		Body: GetUserResponse{
			User:               serializeUser(details.User),
			Accounts:           accounts,
			Categories:         categories,
			RecentTransactions: transactions,
			Budgets:            budgets,
		},
	}, nil
}
