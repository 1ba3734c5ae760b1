package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct {
	IsActive *bool `query:"is_active" doc:"Restrict to active or inactive accounts"`
}

// ListAccountsResponse is the response body for listing accounts.
type ListAccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

// ListAccountsOutput is the response for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponse
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	ListAccounts(ctx context.Context, userID int64, filter *sqlconfig.AccountFilter) ([]*sqlconfig.Account, error)
}

// ListAccountsHandler handles GET /api/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/api/accounts",
		Summary:     "List accounts",
		Description: "Lists the caller's accounts.",
		Tags:        []string{"Accounts"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := h.AccountService.ListAccounts(ctx, userID, &sqlconfig.AccountFilter{IsActive: input.IsActive})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	serialized := make([]Account, len(accounts))
	for i, account := range accounts {
		serialized[i] = serializeAccount(account)
	}
	return &ListAccountsOutput{Body: ListAccountsResponse{Accounts: serialized}}, nil
}
