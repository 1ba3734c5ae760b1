package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// GetAccountInput is the Huma input for retrieving an account.
type GetAccountInput struct {
	ID int64 `path:"id" doc:"Account id"`
}

// GetAccountResponse is the response body for retrieving an account.
type GetAccountResponse struct {
	Account Account `json:"account"`
}

// GetAccountOutput is the response for retrieving an account.
type GetAccountOutput struct {
	Body GetAccountResponse
}

// accountReader is the interface for retrieving a single account.
type accountReader interface {
	GetAccount(ctx context.Context, userID, id int64) (*sqlconfig.Account, error)
}

// GetAccountHandler handles GET /api/accounts/{id}.
type GetAccountHandler struct {
	AccountService accountReader
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountReader) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/api/accounts/{id}",
		Summary:     "Get an account",
		Description: "Retrieves one of the caller's accounts.",
		Tags:        []string{"Accounts"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	account, err := h.AccountService.GetAccount(ctx, userID, input.ID)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetAccountOutput{Body: GetAccountResponse{Account: serializeAccount(account)}}, nil
}
